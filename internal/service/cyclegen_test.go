package service

import (
	"testing"
	"time"

	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/customer"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	"github.com/cadencehq/cadence/internal/testutil"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CycleGeneratorServiceSuite struct {
	testutil.BaseServiceTestSuite
	generator *cycleGeneratorService
	fixedNow  time.Time
}

func TestCycleGeneratorService(t *testing.T) {
	suite.Run(t, new(CycleGeneratorServiceSuite))
}

func (s *CycleGeneratorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	// Anchored to wall time because the stores stamp UpdatedAt with the real
	// clock; the stuck-cycle cutoff compares the two.
	s.fixedNow = time.Now().UTC()

	params := ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		CustomerRepo:     s.GetStores().CustomerRepo,
		ServiceRepo:      s.GetStores().ServiceRepo,
		CycleRepo:        s.GetStores().CycleRepo,
		InvoiceRepo:      s.GetStores().InvoiceRepo,
		EventRepo:        s.GetStores().EventRepo,
		WebhookPublisher: s.GetWebhookPublisher(),
	}
	s.generator = NewCycleGeneratorService(params).(*cycleGeneratorService)
	s.generator.now = func() time.Time { return s.fixedNow }
}

func (s *CycleGeneratorServiceSuite) createCustomer(tenantID string) *customer.Customer {
	cust := &customer.Customer{
		ID:   types.GenerateUUIDWithPrefix(types.UUIDPrefixCustomer),
		Name: "Acme Corp",
		BaseModel: types.BaseModel{
			TenantID:  tenantID,
			Status:    types.StatusPublished,
			CreatedAt: s.fixedNow,
			UpdatedAt: s.fixedNow,
		},
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), cust))
	return cust
}

func (s *CycleGeneratorServiceSuite) createService(cust *customer.Customer, billingType types.BillingType, amount int64) *domainService.Service {
	svc := &domainService.Service{
		ID:               types.GenerateUUIDWithPrefix(types.UUIDPrefixService),
		CustomerID:       cust.ID,
		Name:             "Hosting",
		Amount:           decimal.NewFromInt(amount),
		BillingType:      billingType,
		ServiceStatus:    types.ServiceStatusActive,
		BaseModel: types.BaseModel{
			TenantID:  cust.TenantID,
			Status:    types.StatusPublished,
			CreatedAt: s.fixedNow,
			UpdatedAt: s.fixedNow,
		},
	}
	if billingType == types.BillingTypeRecurring {
		svc.BillingFrequency = types.BillingFrequencyMonthly
	}
	s.NoError(s.GetStores().ServiceRepo.Create(s.GetContext(), svc))
	return svc
}

func (s *CycleGeneratorServiceSuite) createCycle(svc *domainService.Service, start, end time.Time, status types.BillingCycleStatus) *billingcycle.BillingCycle {
	cycle := &billingcycle.BillingCycle{
		ID:          types.GenerateUUIDWithPrefix(types.UUIDPrefixBillingCycle),
		ServiceID:   svc.ID,
		CustomerID:  svc.CustomerID,
		PeriodStart: start,
		PeriodEnd:   end,
		DueDate:     end.AddDate(0, 0, 5),
		Amount:      svc.Amount,
		CycleStatus: status,
		BaseModel: types.BaseModel{
			TenantID:  svc.TenantID,
			Status:    types.StatusPublished,
			CreatedAt: start,
			UpdatedAt: start,
		},
	}
	s.NoError(s.GetStores().CycleRepo.Create(s.GetContext(), cycle))
	return cycle
}

func (s *CycleGeneratorServiceSuite) cycleStore() *testutil.InMemoryBillingCycleStore {
	return s.GetStores().CycleRepo.(*testutil.InMemoryBillingCycleStore)
}

func (s *CycleGeneratorServiceSuite) invoiceStore() *testutil.InMemoryInvoiceStore {
	return s.GetStores().InvoiceRepo.(*testutil.InMemoryInvoiceStore)
}

func (s *CycleGeneratorServiceSuite) eventStore() *testutil.InMemoryDomainEventStore {
	return s.GetStores().EventRepo.(*testutil.InMemoryDomainEventStore)
}

func (s *CycleGeneratorServiceSuite) TestGenerateInvoiceForElapsedCycle() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	start := s.fixedNow.AddDate(0, -1, 0)
	end := s.fixedNow.AddDate(0, 0, -1)
	cycle := s.createCycle(svc, start, end, types.BillingCycleStatusPending)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Processed)
	s.Equal(1, resp.Completed)
	s.Equal(0, resp.Failed)
	s.Empty(resp.Errors)

	// Cycle is invoiced and linked to the written invoice.
	updated, err := s.cycleStore().GetAnyTenant(cycle.ID)
	s.NoError(err)
	s.Equal(types.BillingCycleStatusInvoiced, updated.CycleStatus)
	s.Require().NotNil(updated.InvoiceID)

	inv, err := s.invoiceStore().GetAnyTenant(*updated.InvoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPending, inv.InvoiceStatus)
	s.True(inv.Total.Equal(decimal.NewFromInt(100)))
	s.Equal(svc.TenantID, inv.TenantID)
	s.False(inv.IsLateIssued)
	s.Require().NotNil(inv.DueDate)
	s.True(inv.DueDate.Equal(s.fixedNow.AddDate(0, 0, 30)))
	s.Require().Len(inv.LineItems, 1)
	s.True(inv.LineItems[0].PeriodStart.Equal(start))
	s.True(inv.LineItems[0].PeriodEnd.Equal(end))

	// Successor cycle is chained from the invoiced period's end.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Require().Len(cycles, 2)
	next := cycles[1]
	s.Equal(types.BillingCycleStatusPending, next.CycleStatus)
	s.True(next.PeriodStart.Equal(end))
	s.True(next.PeriodEnd.Equal(end.AddDate(0, 1, 0)))
	s.True(next.DueDate.Equal(end.AddDate(0, 1, 5)))

	// Service advances to the next billing date.
	svcAfter, err := s.GetStores().ServiceRepo.Get(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Require().NotNil(svcAfter.NextBillingDate)
	s.True(svcAfter.NextBillingDate.Equal(next.PeriodEnd))

	// Audit trail and notification.
	s.Equal([]types.DomainEventType{types.DomainEventInvoiceCreated}, s.eventStore().EventTypes(inv.ID))
	s.Equal([]types.DomainEventType{types.DomainEventCycleInvoiced}, s.eventStore().EventTypes(cycle.ID))
	s.Equal([]types.DomainEventType{types.DomainEventCycleCreated}, s.eventStore().EventTypes(next.ID))
	s.Len(s.GetWebhookPublisher().EventsByName(types.WebhookEventInvoiceGenerated), 1)
}

func (s *CycleGeneratorServiceSuite) TestLateIssueFlag() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	// Ended 10 days ago, beyond the 4 day late-issue threshold.
	cycle := s.createCycle(svc,
		s.fixedNow.AddDate(0, -1, -10), s.fixedNow.AddDate(0, 0, -10),
		types.BillingCycleStatusPending)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Completed)

	updated, err := s.cycleStore().GetAnyTenant(cycle.ID)
	s.NoError(err)
	inv, err := s.invoiceStore().GetAnyTenant(*updated.InvoiceID)
	s.NoError(err)
	s.True(inv.IsLateIssued)
}

func (s *CycleGeneratorServiceSuite) TestFutureCycleNotProcessed() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	s.createCycle(svc, s.fixedNow, s.fixedNow.AddDate(0, 1, 0), types.BillingCycleStatusPending)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(0, resp.Processed)
	s.Equal(0, resp.Completed)
}

func (s *CycleGeneratorServiceSuite) TestSecondRunIsIdempotent() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	first, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, first.Completed)

	// The successor cycle is not due yet; nothing is left to process.
	second, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(0, second.Processed)
	s.Len(s.GetWebhookPublisher().EventsByName(types.WebhookEventInvoiceGenerated), 1)
}

func (s *CycleGeneratorServiceSuite) TestHealsCycleWithExistingInvoice() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	// A previous run wrote the invoice but crashed before linking it.
	invoiceSvc := s.generator.invoice
	inv, err := invoiceSvc.CreateFromCycle(s.GetContext(), cycle, svc, s.fixedNow)
	s.NoError(err)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Processed)
	s.Equal(1, resp.Completed)
	s.Equal(0, resp.Failed)

	updated, err := s.cycleStore().GetAnyTenant(cycle.ID)
	s.NoError(err)
	s.Equal(types.BillingCycleStatusInvoiced, updated.CycleStatus)
	s.Require().NotNil(updated.InvoiceID)
	s.Equal(inv.ID, *updated.InvoiceID)

	// Healing links the existing invoice; no duplicate is written.
	invoices, err := s.GetStores().InvoiceRepo.ListByCustomer(s.GetContext(), cust.ID)
	s.NoError(err)
	s.Len(invoices, 1)

	// Healing also resumes the schedule: the successor cycle is chained and
	// the service's next billing date advances.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Require().Len(cycles, 2)
	next := cycles[1]
	s.Equal(types.BillingCycleStatusPending, next.CycleStatus)
	s.True(next.PeriodStart.Equal(cycle.PeriodEnd))

	svcAfter, err := s.GetStores().ServiceRepo.Get(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Require().NotNil(svcAfter.NextBillingDate)
	s.True(svcAfter.NextBillingDate.Equal(next.PeriodEnd))
}

func (s *CycleGeneratorServiceSuite) TestHealLeavesExistingSuccessorAlone() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	// A previous run wrote both the invoice and the successor cycle but
	// crashed before linking the invoice.
	_, err := s.generator.invoice.CreateFromCycle(s.GetContext(), cycle, svc, s.fixedNow)
	s.NoError(err)
	s.createCycle(svc, cycle.PeriodEnd, cycle.PeriodEnd.AddDate(0, 1, 0), types.BillingCycleStatusPending)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Completed)

	// The heal does not chain a second successor.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Len(cycles, 2)
}

func (s *CycleGeneratorServiceSuite) TestHealedOneOffCycleClosesOutService() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeOneOff, 250)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, 0, -2), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	_, err := s.generator.invoice.CreateFromCycle(s.GetContext(), cycle, svc, s.fixedNow)
	s.NoError(err)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Completed)

	// The heal resumes the one-off close-out, not just the invoice link.
	svcAfter, err := s.GetStores().ServiceRepo.Get(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Equal(types.ServiceStatusCancelled, svcAfter.ServiceStatus)
	s.Nil(svcAfter.NextBillingDate)
}

func (s *CycleGeneratorServiceSuite) TestSoftDeletedServiceExcluded() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)
	s.NoError(s.GetStores().ServiceRepo.Delete(s.GetContext(), svc.ID))

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(0, resp.Processed)
}

func (s *CycleGeneratorServiceSuite) TestMissingServiceIsSkippedNotFailed() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)
	cycle.ServiceID = "svc_missing"

	ok, err := s.generator.processCycle(s.GetContext(), cycle)
	s.NoError(err)
	s.False(ok)
}

func (s *CycleGeneratorServiceSuite) TestLostClaimRaceIsSkipped() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	// Another invocation claimed the cycle between fetch and claim.
	won, err := s.cycleStore().TransitionStatus(s.GetContext(), cycle.ID,
		types.BillingCycleStatusPending, types.BillingCycleStatusInvoicing)
	s.NoError(err)
	s.True(won)

	ok, err := s.generator.processCycle(s.GetContext(), cycle)
	s.NoError(err)
	s.False(ok)
}

func (s *CycleGeneratorServiceSuite) TestReconciliationHealsStuckCycleWithInvoice() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	inv, err := s.generator.invoice.CreateFromCycle(s.GetContext(), cycle, svc, s.fixedNow.Add(-time.Hour))
	s.NoError(err)

	// Interrupted run: claimed long ago, invoice written, link never set.
	won, err := s.cycleStore().TransitionStatus(s.GetContext(), cycle.ID,
		types.BillingCycleStatusPending, types.BillingCycleStatusInvoicing)
	s.NoError(err)
	s.True(won)
	s.fixedNow = s.fixedNow.Add(time.Hour)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(0, resp.Processed)

	updated, err := s.cycleStore().GetAnyTenant(cycle.ID)
	s.NoError(err)
	s.Equal(types.BillingCycleStatusInvoiced, updated.CycleStatus)
	s.Require().NotNil(updated.InvoiceID)
	s.Equal(inv.ID, *updated.InvoiceID)

	// The pre-pass resumes the schedule, not just the link.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Require().Len(cycles, 2)
	svcAfter, err := s.GetStores().ServiceRepo.Get(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Require().NotNil(svcAfter.NextBillingDate)
	s.True(svcAfter.NextBillingDate.Equal(cycles[1].PeriodEnd))
}

func (s *CycleGeneratorServiceSuite) TestReconciliationRevertsStuckCycleWithoutInvoice() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	won, err := s.cycleStore().TransitionStatus(s.GetContext(), cycle.ID,
		types.BillingCycleStatusPending, types.BillingCycleStatusInvoicing)
	s.NoError(err)
	s.True(won)
	s.fixedNow = s.fixedNow.Add(time.Hour)

	// The pre-pass reverts the cycle to pending and the main pass invoices it.
	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Processed)
	s.Equal(1, resp.Completed)

	updated, err := s.cycleStore().GetAnyTenant(cycle.ID)
	s.NoError(err)
	s.Equal(types.BillingCycleStatusInvoiced, updated.CycleStatus)
}

func (s *CycleGeneratorServiceSuite) TestRecentInvoicingCycleLeftAlone() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	// Claimed moments ago, presumably by a batch still running.
	won, err := s.cycleStore().TransitionStatus(s.GetContext(), cycle.ID,
		types.BillingCycleStatusPending, types.BillingCycleStatusInvoicing)
	s.NoError(err)
	s.True(won)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(0, resp.Processed)

	updated, err := s.cycleStore().GetAnyTenant(cycle.ID)
	s.NoError(err)
	s.Equal(types.BillingCycleStatusInvoicing, updated.CycleStatus)
}

func (s *CycleGeneratorServiceSuite) TestTenantIntegrityFailure() {
	// The service's customer lives in a different tenant; the lookup under
	// the cycle's tenant comes back empty and the item fails integrity.
	cust := s.createCustomer("tenant-other")
	svc := &domainService.Service{
		ID:               types.GenerateUUIDWithPrefix(types.UUIDPrefixService),
		CustomerID:       cust.ID,
		Name:             "Hosting",
		Amount:           decimal.NewFromInt(100),
		BillingType:      types.BillingTypeRecurring,
		BillingFrequency: types.BillingFrequencyMonthly,
		ServiceStatus:    types.ServiceStatusActive,
		BaseModel: types.BaseModel{
			TenantID:  types.DefaultTenantID,
			Status:    types.StatusPublished,
			CreatedAt: s.fixedNow,
			UpdatedAt: s.fixedNow,
		},
	}
	s.NoError(s.GetStores().ServiceRepo.Create(s.GetContext(), svc))
	s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Processed)
	s.Equal(0, resp.Completed)
	s.Equal(1, resp.Failed)
	s.Require().Len(resp.Errors, 1)

	// Nothing was persisted for the corrupt item.
	invoices, err := s.GetStores().InvoiceRepo.ListByCustomer(s.GetContext(), cust.ID)
	s.NoError(err)
	s.Empty(invoices)
}

func (s *CycleGeneratorServiceSuite) TestOneOffServiceCompletesAfterInvoicing() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeOneOff, 250)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, 0, -2), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Completed)

	svcAfter, err := s.GetStores().ServiceRepo.Get(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Equal(types.ServiceStatusCancelled, svcAfter.ServiceStatus)
	s.Nil(svcAfter.NextBillingDate)

	// No successor cycle for a one-off.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Len(cycles, 1)
	s.Equal(cycle.ID, cycles[0].ID)

	events := s.eventStore().EventTypes(svc.ID)
	s.Contains(events, types.DomainEventServiceCancelled)
}

func (s *CycleGeneratorServiceSuite) TestSuccessorCycleSnapshotsCurrentAmount() {
	cust := s.createCustomer(types.DefaultTenantID)
	svc := s.createService(cust, types.BillingTypeRecurring, 100)
	cycle := s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)

	// Price raised after the open cycle was created.
	svc.Amount = decimal.NewFromInt(150)
	s.NoError(s.GetStores().ServiceRepo.Update(s.GetContext(), svc))

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Completed)

	// The invoice keeps the cycle's original snapshot.
	updated, err := s.cycleStore().GetAnyTenant(cycle.ID)
	s.NoError(err)
	inv, err := s.invoiceStore().GetAnyTenant(*updated.InvoiceID)
	s.NoError(err)
	s.True(inv.Total.Equal(decimal.NewFromInt(100)))

	// The successor snapshots the current price.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), svc.ID)
	s.NoError(err)
	s.Require().Len(cycles, 2)
	s.True(cycles[1].Amount.Equal(decimal.NewFromInt(150)))
}

func (s *CycleGeneratorServiceSuite) TestBatchSizeCapsOneRun() {
	cust := s.createCustomer(types.DefaultTenantID)
	s.GetConfig().Cron.BatchSize = 2
	defer func() { s.GetConfig().Cron.BatchSize = 50 }()

	for i := 0; i < 3; i++ {
		svc := s.createService(cust, types.BillingTypeRecurring, 100)
		s.createCycle(svc, s.fixedNow.AddDate(0, -1, 0), s.fixedNow.AddDate(0, 0, -1), types.BillingCycleStatusPending)
	}

	resp, err := s.generator.GenerateDueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Processed)
	s.Equal(2, resp.Completed)
}

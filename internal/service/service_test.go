package service

import (
	"testing"
	"time"

	"github.com/cadencehq/cadence/internal/api/dto"
	"github.com/cadencehq/cadence/internal/domain/customer"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/testutil"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  *serviceService
	fixedNow time.Time
	cust     *customer.Customer
}

func TestServiceService(t *testing.T) {
	suite.Run(t, new(ServiceServiceSuite))
}

func (s *ServiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
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
	s.service = NewServiceService(params).(*serviceService)
	s.service.now = func() time.Time { return s.fixedNow }

	s.cust = &customer.Customer{
		ID:   types.GenerateUUIDWithPrefix(types.UUIDPrefixCustomer),
		Name: "Acme Corp",
		BaseModel: types.BaseModel{
			TenantID:  types.DefaultTenantID,
			Status:    types.StatusPublished,
			CreatedAt: s.fixedNow,
			UpdatedAt: s.fixedNow,
		},
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), s.cust))
}

func (s *ServiceServiceSuite) createDraft(billingType types.BillingType, frequency types.BillingFrequency) *dto.ServiceResponse {
	resp, err := s.service.Create(s.GetContext(), &dto.CreateServiceRequest{
		CustomerID:       s.cust.ID,
		Name:             "Hosting",
		Amount:           decimal.NewFromInt(100),
		BillingType:      billingType,
		BillingFrequency: frequency,
	})
	s.Require().NoError(err)
	return resp
}

func (s *ServiceServiceSuite) TestCreate() {
	resp := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	s.Equal(types.ServiceStatusDraft, resp.ServiceStatus)
	s.Equal(s.cust.ID, resp.CustomerID)
	s.True(resp.Amount.Equal(decimal.NewFromInt(100)))

	// No cycle exists until activation.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Empty(cycles)
}

func (s *ServiceServiceSuite) TestCreateValidation() {
	// Recurring without a frequency.
	_, err := s.service.Create(s.GetContext(), &dto.CreateServiceRequest{
		CustomerID:  s.cust.ID,
		Name:        "Hosting",
		Amount:      decimal.NewFromInt(100),
		BillingType: types.BillingTypeRecurring,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// One-off carrying a frequency.
	_, err = s.service.Create(s.GetContext(), &dto.CreateServiceRequest{
		CustomerID:       s.cust.ID,
		Name:             "Setup fee",
		Amount:           decimal.NewFromInt(100),
		BillingType:      types.BillingTypeOneOff,
		BillingFrequency: types.BillingFrequencyMonthly,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// Unknown customer.
	_, err = s.service.Create(s.GetContext(), &dto.CreateServiceRequest{
		CustomerID:       "cust_missing",
		Name:             "Hosting",
		Amount:           decimal.NewFromInt(100),
		BillingType:      types.BillingTypeRecurring,
		BillingFrequency: types.BillingFrequencyMonthly,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ServiceServiceSuite) TestActivateOpensFirstCycle() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)

	resp, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.ServiceStatusActive, resp.ServiceStatus)
	s.Require().NotNil(resp.ActivatedAt)
	s.Require().NotNil(resp.NextBillingDate)
	s.True(resp.NextBillingDate.Equal(types.AddClampedDate(s.fixedNow, 0, 1, 0)))

	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Require().Len(cycles, 1)
	cycle := cycles[0]
	s.Equal(types.BillingCycleStatusPending, cycle.CycleStatus)
	s.True(cycle.PeriodStart.Equal(s.fixedNow))
	s.True(cycle.PeriodEnd.Equal(*resp.NextBillingDate))
	s.True(cycle.DueDate.Equal(resp.NextBillingDate.AddDate(0, 0, 5)))
	s.True(cycle.Amount.Equal(decimal.NewFromInt(100)))

	events := s.GetStores().EventRepo.(*testutil.InMemoryDomainEventStore).EventTypes(draft.ID)
	s.Equal([]types.DomainEventType{types.DomainEventServiceActivated}, events)
}

func (s *ServiceServiceSuite) TestActivateOneOff() {
	draft := s.createDraft(types.BillingTypeOneOff, "")

	resp, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.ServiceStatusActive, resp.ServiceStatus)

	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Require().Len(cycles, 1)
	s.True(cycles[0].PeriodEnd.Equal(s.fixedNow.AddDate(0, 0, 1)))
}

func (s *ServiceServiceSuite) TestActivateRejectsNonDraft() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	_, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)

	_, err = s.service.Activate(s.GetContext(), draft.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ServiceServiceSuite) TestPauseAndResume() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	_, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)

	paused, err := s.service.Pause(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.ServiceStatusPaused, paused.ServiceStatus)

	// Pausing twice is rejected.
	_, err = s.service.Pause(s.GetContext(), draft.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	resumed, err := s.service.Resume(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.ServiceStatusActive, resumed.ServiceStatus)

	// Resuming an active service is rejected.
	_, err = s.service.Resume(s.GetContext(), draft.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ServiceServiceSuite) TestCancelSkipsOpenCycles() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	_, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)

	resp, err := s.service.Cancel(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.ServiceStatusCancelled, resp.ServiceStatus)
	s.Nil(resp.NextBillingDate)

	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Require().Len(cycles, 1)
	s.Equal(types.BillingCycleStatusSkipped, cycles[0].CycleStatus)

	events := s.GetStores().EventRepo.(*testutil.InMemoryDomainEventStore).EventTypes(cycles[0].ID)
	s.Contains(events, types.DomainEventCycleSkipped)
}

func (s *ServiceServiceSuite) TestCancelLeavesInvoicingCycleAlone() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	_, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)

	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Require().Len(cycles, 1)

	// The cycle is mid-invoicing in a running batch.
	won, err := s.GetStores().CycleRepo.TransitionStatus(s.GetContext(), cycles[0].ID,
		types.BillingCycleStatusPending, types.BillingCycleStatusInvoicing)
	s.NoError(err)
	s.True(won)

	_, err = s.service.Cancel(s.GetContext(), draft.ID)
	s.NoError(err)

	after, err := s.GetStores().CycleRepo.Get(s.GetContext(), cycles[0].ID)
	s.NoError(err)
	s.Equal(types.BillingCycleStatusInvoicing, after.CycleStatus)
}

func (s *ServiceServiceSuite) TestCancelRejectsCancelledService() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	_, err := s.service.Cancel(s.GetContext(), draft.ID)
	s.NoError(err)

	_, err = s.service.Cancel(s.GetContext(), draft.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ServiceServiceSuite) TestUpdateAmountLeavesOpenCycleSnapshot() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	_, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)

	resp, err := s.service.UpdateAmount(s.GetContext(), draft.ID, &dto.UpdateServiceAmountRequest{
		Amount: decimal.NewFromInt(150),
	})
	s.NoError(err)
	s.True(resp.Amount.Equal(decimal.NewFromInt(150)))

	// The open cycle keeps the snapshot it was created with.
	cycles, err := s.GetStores().CycleRepo.ListByService(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Require().Len(cycles, 1)
	s.True(cycles[0].Amount.Equal(decimal.NewFromInt(100)))
}

func (s *ServiceServiceSuite) TestDeleteSoftDeletes() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)

	s.NoError(s.service.Delete(s.GetContext(), draft.ID))

	_, err := s.service.Get(s.GetContext(), draft.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ServiceServiceSuite) TestGetIncludesHealthAndSummary() {
	draft := s.createDraft(types.BillingTypeRecurring, types.BillingFrequencyMonthly)
	_, err := s.service.Activate(s.GetContext(), draft.ID)
	s.NoError(err)

	resp, err := s.service.Get(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.ServiceHealthHealthy, resp.Health)
	s.Require().NotNil(resp.FinancialSummary)
	s.True(resp.FinancialSummary.TotalDebt.IsZero())
}

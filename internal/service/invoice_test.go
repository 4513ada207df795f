package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cadencehq/cadence/internal/domain/customer"
	domainInvoice "github.com/cadencehq/cadence/internal/domain/invoice"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/testutil"
	"github.com/cadencehq/cadence/internal/types"
	webhookPayload "github.com/cadencehq/cadence/internal/webhook/payload"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  *invoiceService
	fixedNow time.Time
	cust     *customer.Customer
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
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
	s.service = NewInvoiceService(params).(*invoiceService)
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

func (s *InvoiceServiceSuite) createInvoice(status types.InvoiceStatus, dueDate *time.Time, total int64) *domainInvoice.Invoice {
	number, err := s.GetStores().InvoiceRepo.GetNextInvoiceNumber(s.GetContext())
	s.Require().NoError(err)

	inv := &domainInvoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUIDPrefixInvoice),
		CustomerID:    s.cust.ID,
		InvoiceNumber: number,
		IssueDate:     s.fixedNow.AddDate(0, 0, -5),
		DueDate:       dueDate,
		InvoiceStatus: status,
		Total:         decimal.NewFromInt(total),
		BaseModel: types.BaseModel{
			TenantID:  types.DefaultTenantID,
			Status:    types.StatusPublished,
			CreatedAt: s.fixedNow,
			UpdatedAt: s.fixedNow,
		},
	}
	s.Require().NoError(s.GetStores().InvoiceRepo.CreateWithLineItems(s.GetContext(), inv))
	return inv
}

func (s *InvoiceServiceSuite) TestGetResolvesEffectiveStatus() {
	inv := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, -3)), 100)

	resp, err := s.service.Get(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusOverdue, resp.InvoiceStatus)
	s.Equal(types.InvoiceStatusPending, resp.RawStatus)
}

func (s *InvoiceServiceSuite) TestListOutstanding() {
	overdue := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, -10)), 100)
	pending := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, 10)), 40)
	// Raw drafts surface with their resolved status.
	draft := s.createInvoice(types.InvoiceStatusDraft, lo.ToPtr(s.fixedNow.AddDate(0, 0, 10)), 10)
	s.createInvoice(types.InvoiceStatusPaid, nil, 999)
	s.createInvoice(types.InvoiceStatusVoid, nil, 999)

	resp, err := s.service.ListOutstanding(s.GetContext())
	s.NoError(err)
	s.Require().Len(resp, 3)

	byID := map[string]types.InvoiceStatus{}
	for _, inv := range resp {
		byID[inv.ID] = inv.InvoiceStatus
	}
	s.Equal(types.InvoiceStatusOverdue, byID[overdue.ID])
	s.Equal(types.InvoiceStatusPending, byID[pending.ID])
	s.Equal(types.InvoiceStatusPending, byID[draft.ID])
}

func (s *InvoiceServiceSuite) TestMarkPaid() {
	inv := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, 10)), 100)

	resp, err := s.service.MarkPaid(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, resp.InvoiceStatus)

	stored, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, stored.InvoiceStatus)
	s.Require().NotNil(stored.PaidAt)
	s.True(stored.PaidAt.Equal(s.fixedNow))

	events := s.GetStores().EventRepo.(*testutil.InMemoryDomainEventStore).EventTypes(inv.ID)
	s.Equal([]types.DomainEventType{types.DomainEventInvoicePaid}, events)
}

func (s *InvoiceServiceSuite) TestMarkPaidOnOverdueInvoice() {
	// Overdue is still actionable.
	inv := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, -10)), 100)

	resp, err := s.service.MarkPaid(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, resp.InvoiceStatus)
}

func (s *InvoiceServiceSuite) TestMarkPaidRejectsSettledInvoices() {
	paid := s.createInvoice(types.InvoiceStatusPaid, nil, 100)
	void := s.createInvoice(types.InvoiceStatusVoid, nil, 100)

	_, err := s.service.MarkPaid(s.GetContext(), paid.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.MarkPaid(s.GetContext(), void.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestVoid() {
	inv := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, 10)), 100)

	resp, err := s.service.Void(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusVoid, resp.InvoiceStatus)

	stored, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Require().NotNil(stored.VoidedAt)

	events := s.GetStores().EventRepo.(*testutil.InMemoryDomainEventStore).EventTypes(inv.ID)
	s.Equal([]types.DomainEventType{types.DomainEventInvoiceVoided}, events)
}

func (s *InvoiceServiceSuite) TestVoidRejectsPaidAndVoidInvoices() {
	paid := s.createInvoice(types.InvoiceStatusPaid, nil, 100)
	void := s.createInvoice(types.InvoiceStatusVoid, nil, 100)

	_, err := s.service.Void(s.GetContext(), paid.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.Void(s.GetContext(), void.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestGetFinancialSummary() {
	s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, -10)), 100)
	s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, 10)), 40)
	s.createInvoice(types.InvoiceStatusPaid, nil, 999)

	summary, err := s.service.GetFinancialSummary(s.GetContext(), s.cust.ID)
	s.NoError(err)
	s.Equal(s.cust.ID, summary.CustomerID)
	s.True(summary.TotalDebt.Equal(decimal.NewFromInt(100)))
	s.True(summary.FutureDebt.Equal(decimal.NewFromInt(40)))
	s.Equal(1, summary.OverdueCount)
}

func (s *InvoiceServiceSuite) TestProcessPaymentReminders() {
	overdue := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, -10)), 100)
	// Due in 2 days, inside the 3 day window.
	dueSoon := s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, 2)), 50)
	// Due in 10 days, outside the window.
	s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, 10)), 25)

	resp, err := s.service.ProcessPaymentReminders(s.GetContext())
	s.NoError(err)
	s.Equal(3, resp.Processed)
	s.Equal(2, resp.Completed)
	s.Equal(0, resp.Failed)

	reminders := s.GetWebhookPublisher().EventsByName(types.WebhookEventPaymentReminder)
	s.Require().Len(reminders, 1)
	var reminderPayload webhookPayload.Notification
	s.NoError(json.Unmarshal(reminders[0].Payload, &reminderPayload))
	s.Equal(overdue.ID, reminderPayload.InvoiceID)
	s.Equal(s.cust.ID, reminderPayload.ClientID)

	due := s.GetWebhookPublisher().EventsByName(types.WebhookEventPaymentDue)
	s.Require().Len(due, 1)
	var duePayload webhookPayload.Notification
	s.NoError(json.Unmarshal(due[0].Payload, &duePayload))
	s.Equal(dueSoon.ID, duePayload.InvoiceID)
}

func (s *InvoiceServiceSuite) TestRemindersSkipSettledInvoices() {
	s.createInvoice(types.InvoiceStatusPaid, lo.ToPtr(s.fixedNow.AddDate(0, 0, -10)), 100)
	s.createInvoice(types.InvoiceStatusVoid, lo.ToPtr(s.fixedNow.AddDate(0, 0, -10)), 100)

	resp, err := s.service.ProcessPaymentReminders(s.GetContext())
	s.NoError(err)
	s.Equal(0, resp.Processed)
	s.Empty(s.GetWebhookPublisher().Events())
}

func (s *InvoiceServiceSuite) TestRemindersSpanTenants() {
	s.createInvoice(types.InvoiceStatusPending, lo.ToPtr(s.fixedNow.AddDate(0, 0, -5)), 100)

	other := &domainInvoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUIDPrefixInvoice),
		CustomerID:    "cust_other",
		InvoiceNumber: "INV-OTHER-00001",
		IssueDate:     s.fixedNow.AddDate(0, 0, -30),
		DueDate:       lo.ToPtr(s.fixedNow.AddDate(0, 0, -5)),
		InvoiceStatus: types.InvoiceStatusPending,
		Total:         decimal.NewFromInt(75),
		BaseModel: types.BaseModel{
			TenantID:  "tenant-other",
			Status:    types.StatusPublished,
			CreatedAt: s.fixedNow,
			UpdatedAt: s.fixedNow,
		},
	}
	s.Require().NoError(s.GetStores().InvoiceRepo.CreateWithLineItems(s.GetContext(), other))

	resp, err := s.service.ProcessPaymentReminders(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Processed)
	s.Equal(2, resp.Completed)

	reminders := s.GetWebhookPublisher().EventsByName(types.WebhookEventPaymentReminder)
	s.Require().Len(reminders, 2)
	tenants := []string{reminders[0].TenantID, reminders[1].TenantID}
	s.Contains(tenants, types.DefaultTenantID)
	s.Contains(tenants, "tenant-other")
}

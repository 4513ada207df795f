package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cadencehq/cadence/internal/api/dto"
	"github.com/cadencehq/cadence/internal/billing"
	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/domainevent"
	domainInvoice "github.com/cadencehq/cadence/internal/domain/invoice"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	webhookPayload "github.com/cadencehq/cadence/internal/webhook/payload"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InvoiceService manages invoice reads, the payment-processing hooks, and
// the scheduled reminder pass. Effective statuses in every response come from
// the status resolver, never from raw storage.
type InvoiceService interface {
	// CreateFromCycle issues the invoice for an elapsed billing cycle using
	// the cycle's amount snapshot. Used by the cycle generator.
	CreateFromCycle(ctx context.Context, cycle *billingcycle.BillingCycle, svc *domainService.Service, now time.Time) (*domainInvoice.Invoice, error)
	Get(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*dto.InvoiceResponse, error)
	// ListOutstanding returns the tenant's invoices still awaiting payment,
	// i.e. those whose effective status is actionable.
	ListOutstanding(ctx context.Context) ([]*dto.InvoiceResponse, error)
	MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	Void(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	GetFinancialSummary(ctx context.Context, customerID string) (*dto.FinancialSummaryResponse, error)
	// ProcessPaymentReminders walks outstanding invoices across all tenants
	// and emits payment_reminder (overdue) or payment_due (due soon)
	// notifications.
	ProcessPaymentReminders(ctx context.Context) (*dto.BatchRunResponse, error)
}

type invoiceService struct {
	ServiceParams
	now func() time.Time
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *invoiceService) CreateFromCycle(
	ctx context.Context,
	cycle *billingcycle.BillingCycle,
	svc *domainService.Service,
	now time.Time,
) (*domainInvoice.Invoice, error) {
	invoiceNumber, err := s.InvoiceRepo.GetNextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	lateIssueDays := s.Config.Cron.LateIssueDays
	isLateIssued := now.Sub(cycle.PeriodEnd) > time.Duration(lateIssueDays)*24*time.Hour
	dueDate := now.AddDate(0, 0, paymentTermDays)

	inv := &domainInvoice.Invoice{
		ID:             types.GenerateUUIDWithPrefix(types.UUIDPrefixInvoice),
		CustomerID:     svc.CustomerID,
		ServiceID:      lo.ToPtr(svc.ID),
		BillingCycleID: lo.ToPtr(cycle.ID),
		InvoiceNumber:  invoiceNumber,
		IssueDate:      now,
		DueDate:        lo.ToPtr(dueDate),
		InvoiceStatus:  types.InvoiceStatusPending,
		Total:          cycle.Amount,
		IsLateIssued:   isLateIssued,
		// Tenant identity comes from the service record, never from the
		// caller's context.
		BaseModel: types.BaseModel{
			TenantID:  svc.TenantID,
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: types.TriggeredBySystem,
			UpdatedBy: types.TriggeredBySystem,
		},
	}
	inv.LineItems = []*domainInvoice.LineItem{
		{
			ID:          types.GenerateUUIDWithPrefix(types.UUIDPrefixInvoiceLineItem),
			InvoiceID:   inv.ID,
			ServiceID:   lo.ToPtr(svc.ID),
			Description: fmt.Sprintf("%s (%s - %s)", svc.Name, cycle.PeriodStart.Format("2006-01-02"), cycle.PeriodEnd.Format("2006-01-02")),
			Amount:      cycle.Amount,
			Quantity:    decimal.NewFromInt(1),
			PeriodStart: lo.ToPtr(cycle.PeriodStart),
			PeriodEnd:   lo.ToPtr(cycle.PeriodEnd),
			BaseModel: types.BaseModel{
				TenantID: svc.TenantID,
				Status:   types.StatusPublished,
			},
		},
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.InvoiceRepo.CreateWithLineItems(ctx, inv); err != nil {
		return nil, err
	}

	if isLateIssued {
		s.Logger.Warnw("invoice issued late",
			"invoice_id", inv.ID,
			"cycle_id", cycle.ID,
			"period_end", cycle.PeriodEnd,
			"days_late", int(now.Sub(cycle.PeriodEnd).Hours()/24))
	}

	return inv, nil
}

func (s *invoiceService) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewInvoiceResponse(inv, billing.ResolveInvoiceStatus(inv, s.now())), nil
}

func (s *invoiceService) ListByCustomer(ctx context.Context, customerID string) ([]*dto.InvoiceResponse, error) {
	invoices, err := s.InvoiceRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = dto.NewInvoiceResponse(inv, billing.ResolveInvoiceStatus(inv, now))
	}
	return responses, nil
}

func (s *invoiceService) ListOutstanding(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := s.InvoiceRepo.ListOutstanding(ctx)
	if err != nil {
		return nil, err
	}

	// Filter on the resolved status, not raw storage.
	now := s.now()
	responses := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		effective := billing.ResolveInvoiceStatus(inv, now)
		if !billing.IsInvoiceActionable(effective) {
			continue
		}
		responses = append(responses, dto.NewInvoiceResponse(inv, effective))
	}
	return responses, nil
}

func (s *invoiceService) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	effective := billing.ResolveInvoiceStatus(inv, now)
	if !billing.IsInvoiceActionable(effective) {
		return nil, ierr.NewError("invoice is not payable").
			WithHintf("Invoice %s has status %s and cannot be marked paid", id, effective).
			Mark(ierr.ErrInvalidOperation)
	}

	inv.InvoiceStatus = types.InvoiceStatusPaid
	inv.PaidAt = lo.ToPtr(now)
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, types.DomainEventEntityInvoice, inv.ID, types.DomainEventInvoicePaid,
		map[string]interface{}{
			"invoice_number": inv.InvoiceNumber,
			"total":          inv.Total.String(),
			"paid_at":        now,
		})

	return dto.NewInvoiceResponse(inv, types.InvoiceStatusPaid), nil
}

func (s *invoiceService) Void(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus == types.InvoiceStatusPaid {
		return nil, ierr.NewError("paid invoice cannot be voided").
			WithHintf("Invoice %s is already paid", id).
			Mark(ierr.ErrInvalidOperation)
	}
	if inv.InvoiceStatus == types.InvoiceStatusVoid {
		return nil, ierr.NewError("invoice is already void").
			WithHintf("Invoice %s is already void", id).
			Mark(ierr.ErrInvalidOperation)
	}

	now := s.now()
	inv.InvoiceStatus = types.InvoiceStatusVoid
	inv.VoidedAt = lo.ToPtr(now)
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, types.DomainEventEntityInvoice, inv.ID, types.DomainEventInvoiceVoided,
		map[string]interface{}{
			"invoice_number": inv.InvoiceNumber,
			"voided_at":      now,
		})

	return dto.NewInvoiceResponse(inv, types.InvoiceStatusVoid), nil
}

func (s *invoiceService) GetFinancialSummary(ctx context.Context, customerID string) (*dto.FinancialSummaryResponse, error) {
	invoices, err := s.InvoiceRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	summary := billing.DeriveFinancialSummary(invoices, s.now())
	return &dto.FinancialSummaryResponse{
		CustomerID:   customerID,
		TotalDebt:    summary.TotalDebt,
		FutureDebt:   summary.FutureDebt,
		OverdueCount: summary.OverdueCount,
	}, nil
}

func (s *invoiceService) ProcessPaymentReminders(ctx context.Context) (*dto.BatchRunResponse, error) {
	start := s.now()
	response := &dto.BatchRunResponse{
		Success: true,
		Errors:  []string{},
	}

	invoices, err := s.InvoiceRepo.ListOutstandingAllTenants(ctx, s.Config.Cron.ReminderBatchSize)
	if err != nil {
		s.Logger.Errorw("failed to fetch outstanding invoices", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Unable to fetch outstanding invoices").
			Mark(ierr.ErrDatabase)
	}

	dueWindow := time.Duration(s.Config.Cron.PaymentDueWindow) * 24 * time.Hour

	for _, inv := range invoices {
		response.Processed++
		invCtx := types.SetTenantContext(ctx, inv.TenantID, types.TriggeredBySystem)

		var notification *webhookPayload.Notification
		switch billing.ResolveInvoiceStatus(inv, start) {
		case types.InvoiceStatusOverdue:
			notification = webhookPayload.NewPaymentReminderNotification(inv)
		case types.InvoiceStatusPending:
			if inv.DueDate == nil || inv.DueDate.Sub(start) > dueWindow {
				continue
			}
			notification = webhookPayload.NewPaymentDueNotification(inv, *inv.DueDate)
		default:
			continue
		}

		event, err := notification.ToWebhookEvent(types.TriggeredBySystem)
		if err != nil {
			response.Failed++
			response.Errors = append(response.Errors,
				fmt.Sprintf("invoice %s: %s", inv.ID, err.Error()))
			continue
		}
		if err := s.WebhookPublisher.PublishWebhook(invCtx, event); err != nil {
			response.Failed++
			response.Errors = append(response.Errors,
				fmt.Sprintf("invoice %s: %s", inv.ID, err.Error()))
			continue
		}
		response.Completed++
	}

	response.DurationMs = s.now().Sub(start).Milliseconds()
	s.Logger.Infow("payment reminder pass finished",
		"processed", response.Processed,
		"completed", response.Completed,
		"failed", response.Failed)

	return response, nil
}

func (s *invoiceService) recordEvent(
	ctx context.Context,
	entityType types.DomainEventEntityType,
	entityID string,
	eventType types.DomainEventType,
	payload map[string]interface{},
) {
	event := domainevent.New(ctx, entityType, entityID, eventType, payload)
	if err := s.EventRepo.Record(ctx, event); err != nil {
		s.Logger.Errorw("failed to record domain event",
			"event_type", eventType,
			"entity_id", entityID,
			"error", err)
	}
}

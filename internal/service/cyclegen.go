package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cadencehq/cadence/internal/api/dto"
	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/domainevent"
	domainInvoice "github.com/cadencehq/cadence/internal/domain/invoice"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	webhookPayload "github.com/cadencehq/cadence/internal/webhook/payload"
	"github.com/samber/lo"
)

const (
	// paymentTermDays is the interval between an invoice's issue date and its
	// due date.
	paymentTermDays = 30

	// nextCycleDueDays is the grace window between a generated cycle's period
	// end and its due date.
	nextCycleDueDays = 5

	// stuckInvoicingAge is how long a cycle may sit in the invoicing
	// intermediate state before the reconciliation pre-pass picks it up.
	stuckInvoicingAge = 10 * time.Minute
)

// CycleGeneratorService runs the scheduled billing pass: it turns elapsed
// pending billing cycles into invoices and chains the successor cycle for
// recurring services.
type CycleGeneratorService interface {
	GenerateDueInvoices(ctx context.Context) (*dto.BatchRunResponse, error)
}

type cycleGeneratorService struct {
	ServiceParams
	invoice InvoiceService
	now     func() time.Time
}

func NewCycleGeneratorService(params ServiceParams) CycleGeneratorService {
	return &cycleGeneratorService{
		ServiceParams: params,
		invoice:       NewInvoiceService(params),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// GenerateDueInvoices executes one batch pass. Cycles are processed oldest
// first; a single cycle's failure is recorded in the response and never
// aborts the batch. Only the initial due-cycle fetch is fatal.
func (s *cycleGeneratorService) GenerateDueInvoices(ctx context.Context) (*dto.BatchRunResponse, error) {
	start := s.now()
	response := &dto.BatchRunResponse{
		Success: true,
		Errors:  []string{},
	}

	s.reconcileStuckCycles(ctx)

	batchSize := s.Config.Cron.BatchSize
	cycles, err := s.CycleRepo.ListDueAllTenants(ctx, start, batchSize)
	if err != nil {
		s.Logger.Errorw("failed to fetch due billing cycles", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Unable to fetch due billing cycles").
			Mark(ierr.ErrDatabase)
	}

	s.Logger.Infow("starting billing run",
		"due_cycles", len(cycles),
		"batch_size", batchSize)

	for _, cycle := range cycles {
		response.Processed++

		ok, err := s.processCycle(ctx, cycle)
		if err != nil {
			response.Failed++
			response.Errors = append(response.Errors,
				fmt.Sprintf("cycle %s: %s", cycle.ID, err.Error()))
			s.Logger.Errorw("billing cycle processing failed",
				"cycle_id", cycle.ID,
				"tenant_id", cycle.TenantID,
				"error", err)
			continue
		}
		if ok {
			response.Completed++
		}
	}

	response.DurationMs = s.now().Sub(start).Milliseconds()
	s.Logger.Infow("billing run finished",
		"processed", response.Processed,
		"completed", response.Completed,
		"failed", response.Failed,
		"duration_ms", response.DurationMs)

	return response, nil
}

// reconcileStuckCycles heals cycles a previous interrupted run left in the
// invoicing intermediate state. If the invoice was already written the cycle
// advances to invoiced and the rest of its saga resumes; otherwise it reverts
// to pending and the normal path retries it. Failures here are logged only;
// the main pass proceeds.
func (s *cycleGeneratorService) reconcileStuckCycles(ctx context.Context) {
	cutoff := s.now().Add(-stuckInvoicingAge)
	stuck, err := s.CycleRepo.ListStuckInvoicing(ctx, cutoff, s.Config.Cron.BatchSize)
	if err != nil {
		s.Logger.Errorw("failed to list stuck invoicing cycles", "error", err)
		return
	}

	for _, cycle := range stuck {
		cycleCtx := types.SetTenantContext(ctx, cycle.TenantID, types.TriggeredBySystem)

		inv, err := s.InvoiceRepo.GetByBillingCycleID(cycleCtx, cycle.ID)
		switch {
		case err == nil:
			if err := s.healCycle(cycleCtx, cycle, inv.ID); err != nil {
				s.Logger.Errorw("failed to heal stuck cycle to invoiced",
					"cycle_id", cycle.ID, "invoice_id", inv.ID, "error", err)
				continue
			}
			s.Logger.Infow("healed stuck cycle to invoiced",
				"cycle_id", cycle.ID, "invoice_id", inv.ID)
		case ierr.IsNotFound(err):
			if _, err := s.CycleRepo.TransitionStatus(cycleCtx, cycle.ID,
				types.BillingCycleStatusInvoicing, types.BillingCycleStatusPending); err != nil {
				s.Logger.Errorw("failed to revert stuck cycle to pending",
					"cycle_id", cycle.ID, "error", err)
				continue
			}
			s.Logger.Infow("reverted stuck cycle to pending", "cycle_id", cycle.ID)
		default:
			s.Logger.Errorw("failed to look up invoice for stuck cycle",
				"cycle_id", cycle.ID, "error", err)
		}
	}
}

// processCycle handles one due cycle. The bool result reports whether an
// invoice generation was completed; data gaps and lost CAS races return
// (false, nil) so they are neither completed nor failed.
func (s *cycleGeneratorService) processCycle(ctx context.Context, cycle *billingcycle.BillingCycle) (bool, error) {
	// The batch spans tenants; every per-cycle read and write runs under the
	// cycle's own tenant.
	ctx = types.SetTenantContext(ctx, cycle.TenantID, types.TriggeredBySystem)
	now := s.now()

	svc, err := s.ServiceRepo.Get(ctx, cycle.ServiceID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Warnw("billing cycle references missing or deleted service, skipping",
				"cycle_id", cycle.ID,
				"service_id", cycle.ServiceID)
			return false, nil
		}
		return false, err
	}
	if svc.IsDeleted() {
		s.Logger.Warnw("billing cycle references soft-deleted service, skipping",
			"cycle_id", cycle.ID,
			"service_id", svc.ID)
		return false, nil
	}

	if err := s.checkTenantIntegrity(ctx, cycle, svc); err != nil {
		return false, err
	}

	// Overlap guard: only the invocation that wins this transition works the
	// cycle. Losing the race is not an error.
	won, err := s.CycleRepo.TransitionStatus(ctx, cycle.ID,
		types.BillingCycleStatusPending, types.BillingCycleStatusInvoicing)
	if err != nil {
		return false, err
	}
	if !won {
		s.Logger.Debugw("billing cycle claimed by another invocation, skipping",
			"cycle_id", cycle.ID)
		return false, nil
	}

	// Idempotency: an invoice keyed to this cycle id means a previous run got
	// interrupted after the write. Heal the link and resume the rest of the
	// unit of work instead of double-billing.
	if existing, err := s.InvoiceRepo.GetByBillingCycleID(ctx, cycle.ID); err == nil {
		s.Logger.Infow("invoice already exists for cycle, healing link",
			"cycle_id", cycle.ID,
			"invoice_id", existing.ID)
		if err := s.finishCycle(ctx, cycle, svc, existing.ID); err != nil {
			return false, err
		}
		return true, nil
	} else if !ierr.IsNotFound(err) {
		return false, err
	}

	inv, err := s.invoice.CreateFromCycle(ctx, cycle, svc, now)
	if err != nil {
		return false, err
	}

	if err := s.finishCycle(ctx, cycle, svc, inv.ID); err != nil {
		return false, err
	}

	s.recordEvent(ctx, types.DomainEventEntityInvoice, inv.ID, types.DomainEventInvoiceCreated,
		map[string]interface{}{
			"invoice_number": inv.InvoiceNumber,
			"cycle_id":       cycle.ID,
			"total":          inv.Total.String(),
			"is_late_issued": inv.IsLateIssued,
		})
	s.recordEvent(ctx, types.DomainEventEntityCycle, cycle.ID, types.DomainEventCycleInvoiced,
		map[string]interface{}{
			"invoice_id": inv.ID,
		})

	s.publishInvoiceGenerated(ctx, inv, svc)

	return true, nil
}

// finishCycle commits the tail of the per-cycle saga atomically: the
// invoice link plus the successor cycle (or one-off close-out). Running both
// in one transaction means a cycle can never end up invoiced with the
// schedule left stalled.
func (s *cycleGeneratorService) finishCycle(ctx context.Context, cycle *billingcycle.BillingCycle, svc *domainService.Service, invoiceID string) error {
	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.CycleRepo.MarkInvoiced(ctx, cycle.ID, invoiceID); err != nil {
			return err
		}
		return s.resumeAfterInvoice(ctx, cycle, svc)
	})
}

// resumeAfterInvoice finishes the work that follows the invoice link: the
// successor cycle for a recurring service, or the close-out for a one-off.
// Both steps are guarded so a heal can resume here without duplicating work.
func (s *cycleGeneratorService) resumeAfterInvoice(ctx context.Context, cycle *billingcycle.BillingCycle, svc *domainService.Service) error {
	if svc.IsRecurring() {
		exists, err := s.successorExists(ctx, cycle)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		return s.chainNextCycle(ctx, cycle, svc)
	}

	if svc.ServiceStatus == types.ServiceStatusCancelled ||
		svc.ServiceStatus == types.ServiceStatusCompleted {
		return nil
	}
	return s.completeOneOffService(ctx, svc)
}

// successorExists reports whether a cycle starting at or after this cycle's
// period end already exists for the service.
func (s *cycleGeneratorService) successorExists(ctx context.Context, cycle *billingcycle.BillingCycle) (bool, error) {
	cycles, err := s.CycleRepo.ListByService(ctx, cycle.ServiceID)
	if err != nil {
		return false, err
	}
	for _, c := range cycles {
		if c.ID != cycle.ID && !c.PeriodStart.Before(cycle.PeriodEnd) {
			return true, nil
		}
	}
	return false, nil
}

// healCycle advances a stuck cycle to invoiced and resumes its saga so the
// recurring schedule does not stall. When the owning service is gone only
// the invoice link is repaired; there is no schedule left to resume.
func (s *cycleGeneratorService) healCycle(ctx context.Context, cycle *billingcycle.BillingCycle, invoiceID string) error {
	svc, err := s.ServiceRepo.Get(ctx, cycle.ServiceID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return s.CycleRepo.MarkInvoiced(ctx, cycle.ID, invoiceID)
		}
		return err
	}

	return s.finishCycle(ctx, cycle, svc, invoiceID)
}

// checkTenantIntegrity verifies the cycle, its service, and the service's
// customer all agree on the tenant. A mismatch means cross-tenant data
// corruption; nothing is persisted for the item.
func (s *cycleGeneratorService) checkTenantIntegrity(ctx context.Context, cycle *billingcycle.BillingCycle, svc *domainService.Service) error {
	if cycle.TenantID != svc.TenantID {
		return ierr.NewError("tenant mismatch between billing cycle and service").
			WithHint("Billing cycle and service belong to different tenants").
			WithReportableDetails(map[string]any{
				"cycle_id":          cycle.ID,
				"cycle_tenant_id":   cycle.TenantID,
				"service_id":        svc.ID,
				"service_tenant_id": svc.TenantID,
			}).
			Mark(ierr.ErrIntegrity)
	}

	cust, err := s.CustomerRepo.Get(ctx, svc.CustomerID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Service customer not found in cycle tenant").
				WithReportableDetails(map[string]any{
					"cycle_id":    cycle.ID,
					"customer_id": svc.CustomerID,
				}).
				Mark(ierr.ErrIntegrity)
		}
		return err
	}
	if cust.TenantID != cycle.TenantID {
		return ierr.NewError("tenant mismatch between billing cycle and customer").
			WithHint("Billing cycle and customer belong to different tenants").
			WithReportableDetails(map[string]any{
				"cycle_id":           cycle.ID,
				"cycle_tenant_id":    cycle.TenantID,
				"customer_id":        cust.ID,
				"customer_tenant_id": cust.TenantID,
			}).
			Mark(ierr.ErrIntegrity)
	}

	return nil
}

// chainNextCycle creates the successor pending cycle for a recurring service
// and advances the service's next billing date. The amount snapshot comes
// from the service's current amount, not the invoiced cycle's.
func (s *cycleGeneratorService) chainNextCycle(ctx context.Context, prev *billingcycle.BillingCycle, svc *domainService.Service) error {
	nextStart := prev.PeriodEnd
	nextEnd, err := types.NextBillingDate(nextStart, svc.BillingFrequency)
	if err != nil {
		return err
	}
	nextDue := nextEnd.AddDate(0, 0, nextCycleDueDays)
	now := s.now()

	next := &billingcycle.BillingCycle{
		ID:          types.GenerateUUIDWithPrefix(types.UUIDPrefixBillingCycle),
		ServiceID:   svc.ID,
		CustomerID:  svc.CustomerID,
		PeriodStart: nextStart,
		PeriodEnd:   nextEnd,
		DueDate:     nextDue,
		Amount:      svc.Amount,
		CycleStatus: types.BillingCycleStatusPending,
		BaseModel: types.BaseModel{
			TenantID:  svc.TenantID,
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: types.TriggeredBySystem,
			UpdatedBy: types.TriggeredBySystem,
		},
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if err := s.CycleRepo.Create(ctx, next); err != nil {
		return err
	}

	svc.NextBillingDate = lo.ToPtr(nextEnd)
	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return err
	}

	s.recordEvent(ctx, types.DomainEventEntityCycle, next.ID, types.DomainEventCycleCreated,
		map[string]interface{}{
			"service_id":   svc.ID,
			"period_start": nextStart,
			"period_end":   nextEnd,
			"amount":       next.Amount.String(),
		})

	return nil
}

// completeOneOffService closes out a one-off service after its single cycle
// is invoiced. There is no distinct completed state; the service collapses to
// cancelled.
func (s *cycleGeneratorService) completeOneOffService(ctx context.Context, svc *domainService.Service) error {
	svc.ServiceStatus = types.ServiceStatusCancelled
	svc.NextBillingDate = nil
	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return err
	}

	s.recordEvent(ctx, types.DomainEventEntityService, svc.ID, types.DomainEventServiceCancelled,
		map[string]interface{}{
			"reason": "one_off_invoiced",
		})

	return nil
}

// recordEvent writes an audit trail entry. Audit failures are logged and do
// not fail the billing step that produced them.
func (s *cycleGeneratorService) recordEvent(
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

// publishInvoiceGenerated notifies the dispatcher. Fire and forget: a publish
// failure is logged and does not count against the item.
func (s *cycleGeneratorService) publishInvoiceGenerated(ctx context.Context, inv *domainInvoice.Invoice, svc *domainService.Service) {
	notification := webhookPayload.NewInvoiceGeneratedNotification(inv, svc)
	event, err := notification.ToWebhookEvent(types.TriggeredBySystem)
	if err != nil {
		s.Logger.Errorw("failed to build invoice notification",
			"invoice_id", inv.ID, "error", err)
		return
	}
	if err := s.WebhookPublisher.PublishWebhook(ctx, event); err != nil {
		s.Logger.Errorw("failed to publish invoice notification",
			"invoice_id", inv.ID, "error", err)
	}
}

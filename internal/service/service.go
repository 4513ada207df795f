package service

import (
	"context"
	"time"

	"github.com/cadencehq/cadence/internal/api/dto"
	"github.com/cadencehq/cadence/internal/billing"
	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/domainevent"
	domainInvoice "github.com/cadencehq/cadence/internal/domain/invoice"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/samber/lo"
)

// oneOffCycleDays is the billable window of a one-off service's single cycle.
const oneOffCycleDays = 1

// ServiceService manages the lifecycle of billable services. Activation
// creates the first pending billing cycle; cancellation skips any still-open
// ones. Amount changes apply to future cycles only.
type ServiceService interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	Get(ctx context.Context, id string) (*dto.ServiceResponse, error)
	List(ctx context.Context, customerID string) ([]*dto.ServiceResponse, error)
	Activate(ctx context.Context, id string) (*dto.ServiceResponse, error)
	Pause(ctx context.Context, id string) (*dto.ServiceResponse, error)
	Resume(ctx context.Context, id string) (*dto.ServiceResponse, error)
	Cancel(ctx context.Context, id string) (*dto.ServiceResponse, error)
	UpdateAmount(ctx context.Context, id string, req *dto.UpdateServiceAmountRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceService struct {
	ServiceParams
	now func() time.Time
}

func NewServiceService(params ServiceParams) ServiceService {
	return &serviceService{
		ServiceParams: params,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *serviceService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The customer must exist in the caller's tenant.
	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	svc := &domainService.Service{
		ID:               types.GenerateUUIDWithPrefix(types.UUIDPrefixService),
		CustomerID:       req.CustomerID,
		Name:             req.Name,
		Amount:           req.Amount,
		BillingType:      req.BillingType,
		BillingFrequency: req.BillingFrequency,
		ServiceStatus:    types.ServiceStatusDraft,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	if err := svc.Validate(); err != nil {
		return nil, err
	}

	if err := s.ServiceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	return dto.NewServiceResponse(svc, billing.ResolveServiceState(svc)), nil
}

func (s *serviceService) Get(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	invoices, err := s.serviceInvoices(ctx, svc)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := dto.NewServiceResponse(svc, billing.ResolveServiceState(svc))
	resp.Health = billing.DeriveServiceHealth(svc, invoices, now)

	summary := billing.DeriveFinancialSummary(invoices, now)
	resp.FinancialSummary = &dto.FinancialSummaryResponse{
		CustomerID:   svc.CustomerID,
		TotalDebt:    summary.TotalDebt,
		FutureDebt:   summary.FutureDebt,
		OverdueCount: summary.OverdueCount,
	}

	return resp, nil
}

func (s *serviceService) List(ctx context.Context, customerID string) ([]*dto.ServiceResponse, error) {
	services, err := s.ServiceRepo.List(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ServiceResponse, len(services))
	for i, svc := range services {
		responses[i] = dto.NewServiceResponse(svc, billing.ResolveServiceState(svc))
	}
	return responses, nil
}

// Activate moves a draft service to active and opens its first billing
// cycle. The cycle's amount snapshots the service amount at this moment.
func (s *serviceService) Activate(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if svc.ServiceStatus != types.ServiceStatusDraft {
		return nil, ierr.NewError("only draft services can be activated").
			WithHintf("Service %s has status %s", id, svc.ServiceStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	now := s.now()
	periodStart := now
	var periodEnd time.Time
	if svc.IsRecurring() {
		periodEnd, err = types.NextBillingDate(periodStart, svc.BillingFrequency)
		if err != nil {
			return nil, err
		}
	} else {
		periodEnd = periodStart.AddDate(0, 0, oneOffCycleDays)
	}

	cycle := &billingcycle.BillingCycle{
		ID:          types.GenerateUUIDWithPrefix(types.UUIDPrefixBillingCycle),
		ServiceID:   svc.ID,
		CustomerID:  svc.CustomerID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		DueDate:     periodEnd.AddDate(0, 0, nextCycleDueDays),
		Amount:      svc.Amount,
		CycleStatus: types.BillingCycleStatusPending,
		BaseModel: types.BaseModel{
			TenantID:  svc.TenantID,
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: types.GetUserID(ctx),
			UpdatedBy: types.GetUserID(ctx),
		},
	}
	if err := cycle.Validate(); err != nil {
		return nil, err
	}
	if err := s.CycleRepo.Create(ctx, cycle); err != nil {
		return nil, err
	}

	svc.ServiceStatus = types.ServiceStatusActive
	svc.ActivatedAt = lo.ToPtr(now)
	svc.NextBillingDate = lo.ToPtr(periodEnd)
	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, types.DomainEventEntityCycle, cycle.ID, types.DomainEventCycleCreated,
		map[string]interface{}{
			"service_id":   svc.ID,
			"period_start": cycle.PeriodStart,
			"period_end":   cycle.PeriodEnd,
			"amount":       cycle.Amount.String(),
		})
	s.recordEvent(ctx, types.DomainEventEntityService, svc.ID, types.DomainEventServiceActivated,
		map[string]interface{}{
			"activated_at": now,
		})

	return dto.NewServiceResponse(svc, billing.ResolveServiceState(svc)), nil
}

func (s *serviceService) Pause(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if svc.ServiceStatus != types.ServiceStatusActive {
		return nil, ierr.NewError("only active services can be paused").
			WithHintf("Service %s has status %s", id, svc.ServiceStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	svc.ServiceStatus = types.ServiceStatusPaused
	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, types.DomainEventEntityService, svc.ID, types.DomainEventServicePaused, nil)

	return dto.NewServiceResponse(svc, billing.ResolveServiceState(svc)), nil
}

func (s *serviceService) Resume(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if svc.ServiceStatus != types.ServiceStatusPaused {
		return nil, ierr.NewError("only paused services can be resumed").
			WithHintf("Service %s has status %s", id, svc.ServiceStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	svc.ServiceStatus = types.ServiceStatusActive
	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, types.DomainEventEntityService, svc.ID, types.DomainEventServiceResumed, nil)

	return dto.NewServiceResponse(svc, billing.ResolveServiceState(svc)), nil
}

// Cancel ends the service and skips its open cycles so the generator never
// invoices them.
func (s *serviceService) Cancel(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch svc.ServiceStatus {
	case types.ServiceStatusCancelled, types.ServiceStatusCompleted:
		return nil, ierr.NewError("service is already cancelled").
			WithHintf("Service %s has status %s", id, svc.ServiceStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	open, err := s.CycleRepo.ListOpenByService(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	for _, cycle := range open {
		if cycle.CycleStatus != types.BillingCycleStatusPending {
			// A cycle mid-invoicing belongs to a running batch; leave it to
			// finish or be reconciled.
			continue
		}
		skipped, err := s.CycleRepo.TransitionStatus(ctx, cycle.ID,
			types.BillingCycleStatusPending, types.BillingCycleStatusSkipped)
		if err != nil {
			return nil, err
		}
		if skipped {
			s.recordEvent(ctx, types.DomainEventEntityCycle, cycle.ID, types.DomainEventCycleSkipped,
				map[string]interface{}{
					"reason": "service_cancelled",
				})
		}
	}

	svc.ServiceStatus = types.ServiceStatusCancelled
	svc.NextBillingDate = nil
	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, types.DomainEventEntityService, svc.ID, types.DomainEventServiceCancelled,
		map[string]interface{}{
			"skipped_cycles": len(open),
		})

	return dto.NewServiceResponse(svc, billing.ResolveServiceState(svc)), nil
}

// UpdateAmount changes the price for cycles created after this call. Open
// cycles keep the snapshot they were created with.
func (s *serviceService) UpdateAmount(ctx context.Context, id string, req *dto.UpdateServiceAmountRequest) (*dto.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc, err := s.ServiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Amount = req.Amount
	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	return dto.NewServiceResponse(svc, billing.ResolveServiceState(svc)), nil
}

func (s *serviceService) Delete(ctx context.Context, id string) error {
	if _, err := s.ServiceRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.ServiceRepo.Delete(ctx, id)
}

// serviceInvoices returns the customer's invoices narrowed to this service.
func (s *serviceService) serviceInvoices(ctx context.Context, svc *domainService.Service) ([]*domainInvoice.Invoice, error) {
	invoices, err := s.InvoiceRepo.ListByCustomer(ctx, svc.CustomerID)
	if err != nil {
		return nil, err
	}

	return lo.Filter(invoices, func(inv *domainInvoice.Invoice, _ int) bool {
		return inv.ServiceID != nil && *inv.ServiceID == svc.ID
	}), nil
}

func (s *serviceService) recordEvent(
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

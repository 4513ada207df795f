package testutil

import (
	"context"
	"time"

	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
)

// InMemoryBillingCycleStore implements billingcycle.Repository. It holds a
// reference to the service store so the due-cycle query can exclude cycles
// whose owning service was soft-deleted, mirroring the SQL join.
type InMemoryBillingCycleStore struct {
	*InMemoryStore[*billingcycle.BillingCycle]
	services *InMemoryServiceStore
}

func NewInMemoryBillingCycleStore(services *InMemoryServiceStore) *InMemoryBillingCycleStore {
	return &InMemoryBillingCycleStore{
		InMemoryStore: NewInMemoryStore[*billingcycle.BillingCycle](),
		services:      services,
	}
}

func copyBillingCycle(cycle *billingcycle.BillingCycle) *billingcycle.BillingCycle {
	if cycle == nil {
		return nil
	}
	copied := *cycle
	if cycle.InvoiceID != nil {
		invoiceID := *cycle.InvoiceID
		copied.InvoiceID = &invoiceID
	}
	return &copied
}

func (s *InMemoryBillingCycleStore) Create(ctx context.Context, cycle *billingcycle.BillingCycle) error {
	if err := s.InMemoryStore.Create(ctx, cycle.ID, copyBillingCycle(cycle)); err != nil {
		return ierr.WithError(err).
			WithHint("Billing cycle with this ID already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryBillingCycleStore) Get(ctx context.Context, id string) (*billingcycle.BillingCycle, error) {
	cycle, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || cycle.TenantID != types.GetTenantID(ctx) || cycle.Status == types.StatusDeleted {
		return nil, ierr.NewError("billing cycle not found").
			WithHintf("Billing cycle %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyBillingCycle(cycle), nil
}

// GetAnyTenant bypasses the tenant scope for test assertions.
func (s *InMemoryBillingCycleStore) GetAnyTenant(id string) (*billingcycle.BillingCycle, error) {
	cycle, err := s.InMemoryStore.Get(context.Background(), id)
	if err != nil {
		return nil, ierr.NewError("billing cycle not found").
			WithHintf("Billing cycle %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyBillingCycle(cycle), nil
}

func (s *InMemoryBillingCycleStore) Update(ctx context.Context, cycle *billingcycle.BillingCycle) error {
	if _, err := s.Get(ctx, cycle.ID); err != nil {
		return err
	}
	copied := copyBillingCycle(cycle)
	copied.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, cycle.ID, copied)
}

func (s *InMemoryBillingCycleStore) ListByService(ctx context.Context, serviceID string) ([]*billingcycle.BillingCycle, error) {
	return s.listByService(ctx, serviceID, nil)
}

func (s *InMemoryBillingCycleStore) ListOpenByService(ctx context.Context, serviceID string) ([]*billingcycle.BillingCycle, error) {
	open := func(cycle *billingcycle.BillingCycle) bool {
		return cycle.IsOpen()
	}
	return s.listByService(ctx, serviceID, open)
}

func (s *InMemoryBillingCycleStore) listByService(ctx context.Context, serviceID string, extra func(*billingcycle.BillingCycle) bool) ([]*billingcycle.BillingCycle, error) {
	filterFn := func(ctx context.Context, cycle *billingcycle.BillingCycle) bool {
		if cycle.TenantID != types.GetTenantID(ctx) ||
			cycle.ServiceID != serviceID ||
			cycle.Status == types.StatusDeleted {
			return false
		}
		return extra == nil || extra(cycle)
	}
	sortFn := func(i, j *billingcycle.BillingCycle) bool {
		return i.PeriodStart.Before(j.PeriodStart)
	}

	cycles, err := s.InMemoryStore.List(ctx, filterFn, sortFn)
	if err != nil {
		return nil, err
	}
	return copyBillingCycles(cycles), nil
}

func (s *InMemoryBillingCycleStore) ListDueAllTenants(ctx context.Context, before time.Time, limit int) ([]*billingcycle.BillingCycle, error) {
	filterFn := func(ctx context.Context, cycle *billingcycle.BillingCycle) bool {
		if cycle.Status == types.StatusDeleted ||
			cycle.CycleStatus != types.BillingCycleStatusPending ||
			cycle.PeriodEnd.After(before) {
			return false
		}
		svc, err := s.services.GetAnyTenant(cycle.ServiceID)
		if err != nil {
			return false
		}
		return svc.Status != types.StatusDeleted
	}
	sortFn := func(i, j *billingcycle.BillingCycle) bool {
		return i.PeriodEnd.Before(j.PeriodEnd)
	}

	cycles, err := s.InMemoryStore.List(ctx, filterFn, sortFn)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(cycles) > limit {
		cycles = cycles[:limit]
	}
	return copyBillingCycles(cycles), nil
}

func (s *InMemoryBillingCycleStore) ListStuckInvoicing(ctx context.Context, before time.Time, limit int) ([]*billingcycle.BillingCycle, error) {
	filterFn := func(ctx context.Context, cycle *billingcycle.BillingCycle) bool {
		return cycle.Status != types.StatusDeleted &&
			cycle.CycleStatus == types.BillingCycleStatusInvoicing &&
			cycle.UpdatedAt.Before(before)
	}
	sortFn := func(i, j *billingcycle.BillingCycle) bool {
		return i.UpdatedAt.Before(j.UpdatedAt)
	}

	cycles, err := s.InMemoryStore.List(ctx, filterFn, sortFn)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(cycles) > limit {
		cycles = cycles[:limit]
	}
	return copyBillingCycles(cycles), nil
}

func (s *InMemoryBillingCycleStore) TransitionStatus(ctx context.Context, id string, from, to types.BillingCycleStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycle, ok := s.items[id]
	if !ok || cycle.Status == types.StatusDeleted {
		return false, ierr.NewError("billing cycle not found").
			WithHintf("Billing cycle %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	if cycle.CycleStatus != from {
		return false, nil
	}
	cycle.CycleStatus = to
	cycle.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (s *InMemoryBillingCycleStore) MarkInvoiced(ctx context.Context, id string, invoiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycle, ok := s.items[id]
	if !ok || cycle.Status == types.StatusDeleted {
		return ierr.NewError("billing cycle not found").
			WithHintf("Billing cycle %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	cycle.CycleStatus = types.BillingCycleStatusInvoiced
	cycle.InvoiceID = &invoiceID
	cycle.UpdatedAt = time.Now().UTC()
	return nil
}

func copyBillingCycles(cycles []*billingcycle.BillingCycle) []*billingcycle.BillingCycle {
	result := make([]*billingcycle.BillingCycle, len(cycles))
	for i, cycle := range cycles {
		result[i] = copyBillingCycle(cycle)
	}
	return result
}

package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cadencehq/cadence/internal/domain/invoice"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository. It enforces the same
// uniqueness the database does: one invoice per (tenant, billing_cycle_id)
// and per (tenant, invoice_number).
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
	seqMu     sync.Mutex
	sequences map[string]int
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
		sequences:     make(map[string]int),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	copied := *inv
	if inv.ServiceID != nil {
		serviceID := *inv.ServiceID
		copied.ServiceID = &serviceID
	}
	if inv.BillingCycleID != nil {
		cycleID := *inv.BillingCycleID
		copied.BillingCycleID = &cycleID
	}
	if inv.DueDate != nil {
		dueDate := *inv.DueDate
		copied.DueDate = &dueDate
	}
	if inv.PaidAt != nil {
		paidAt := *inv.PaidAt
		copied.PaidAt = &paidAt
	}
	if inv.VoidedAt != nil {
		voidedAt := *inv.VoidedAt
		copied.VoidedAt = &voidedAt
	}
	if inv.LineItems != nil {
		copied.LineItems = make([]*invoice.LineItem, len(inv.LineItems))
		for i, item := range inv.LineItems {
			itemCopy := *item
			copied.LineItems[i] = &itemCopy
		}
	}
	return &copied
}

func (s *InMemoryInvoiceStore) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[inv.ID]; exists {
		return ierr.NewError("invoice already exists").
			WithHintf("Invoice %s already exists", inv.ID).
			Mark(ierr.ErrAlreadyExists)
	}
	for _, existing := range s.items {
		if existing.TenantID != inv.TenantID || existing.Status == types.StatusDeleted {
			continue
		}
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return ierr.NewError("invoice number already in use").
				WithHintf("Invoice number %s already exists", inv.InvoiceNumber).
				Mark(ierr.ErrAlreadyExists)
		}
		if existing.BillingCycleID != nil && inv.BillingCycleID != nil &&
			*existing.BillingCycleID == *inv.BillingCycleID {
			return ierr.NewError("billing cycle already invoiced").
				WithHintf("An invoice already exists for billing cycle %s", *inv.BillingCycleID).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	s.items[inv.ID] = copyInvoice(inv)
	return nil
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || inv.TenantID != types.GetTenantID(ctx) || inv.Status == types.StatusDeleted {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

// GetAnyTenant bypasses the tenant scope for test assertions.
func (s *InMemoryInvoiceStore) GetAnyTenant(id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(context.Background(), id)
	if err != nil {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	if _, err := s.Get(ctx, inv.ID); err != nil {
		return err
	}
	copied := copyInvoice(inv)
	copied.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, inv.ID, copied)
}

func (s *InMemoryInvoiceStore) ListByCustomer(ctx context.Context, customerID string) ([]*invoice.Invoice, error) {
	filterFn := func(ctx context.Context, inv *invoice.Invoice) bool {
		return inv.TenantID == types.GetTenantID(ctx) &&
			inv.CustomerID == customerID &&
			inv.Status != types.StatusDeleted
	}
	sortFn := func(i, j *invoice.Invoice) bool {
		return i.IssueDate.Before(j.IssueDate)
	}
	return s.list(ctx, filterFn, sortFn)
}

func (s *InMemoryInvoiceStore) ListOutstanding(ctx context.Context) ([]*invoice.Invoice, error) {
	filterFn := func(ctx context.Context, inv *invoice.Invoice) bool {
		return inv.TenantID == types.GetTenantID(ctx) &&
			inv.Status != types.StatusDeleted &&
			isOutstandingStatus(inv.InvoiceStatus)
	}
	sortFn := func(i, j *invoice.Invoice) bool {
		return i.IssueDate.Before(j.IssueDate)
	}
	return s.list(ctx, filterFn, sortFn)
}

func (s *InMemoryInvoiceStore) ListOutstandingAllTenants(ctx context.Context, limit int) ([]*invoice.Invoice, error) {
	filterFn := func(ctx context.Context, inv *invoice.Invoice) bool {
		return inv.Status != types.StatusDeleted &&
			inv.DueDate != nil &&
			(inv.InvoiceStatus == types.InvoiceStatusPending ||
				inv.InvoiceStatus == types.InvoiceStatusOverdue)
	}
	sortFn := func(i, j *invoice.Invoice) bool {
		return i.DueDate.Before(*j.DueDate)
	}

	invoices, err := s.list(ctx, filterFn, sortFn)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(invoices) > limit {
		invoices = invoices[:limit]
	}
	return invoices, nil
}

func (s *InMemoryInvoiceStore) GetByBillingCycleID(ctx context.Context, cycleID string) (*invoice.Invoice, error) {
	filterFn := func(ctx context.Context, inv *invoice.Invoice) bool {
		return inv.TenantID == types.GetTenantID(ctx) &&
			inv.Status != types.StatusDeleted &&
			inv.BillingCycleID != nil &&
			*inv.BillingCycleID == cycleID
	}

	invoices, err := s.list(ctx, filterFn, nil)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, ierr.NewError("invoice not found").
			WithHintf("No invoice found for billing cycle %s", cycleID).
			Mark(ierr.ErrNotFound)
	}
	return invoices[0], nil
}

func (s *InMemoryInvoiceStore) GetNextInvoiceNumber(ctx context.Context) (string, error) {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	yearMonth := time.Now().UTC().Format("200601")
	key := types.GetTenantID(ctx) + ":" + yearMonth
	s.sequences[key]++
	return fmt.Sprintf("INV-%s-%05d", yearMonth, s.sequences[key]), nil
}

func (s *InMemoryInvoiceStore) list(ctx context.Context, filterFn FilterFunc[*invoice.Invoice], sortFn SortFunc[*invoice.Invoice]) ([]*invoice.Invoice, error) {
	invoices, err := s.InMemoryStore.List(ctx, filterFn, sortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*invoice.Invoice, len(invoices))
	for i, inv := range invoices {
		result[i] = copyInvoice(inv)
	}
	return result, nil
}

func isOutstandingStatus(status types.InvoiceStatus) bool {
	return status == types.InvoiceStatusDraft ||
		status == types.InvoiceStatusPending ||
		status == types.InvoiceStatusOverdue
}

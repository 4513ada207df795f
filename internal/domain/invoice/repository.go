package invoice

import "context"

// Repository provides access to invoice storage. Operations are scoped to the
// tenant carried in the context.
type Repository interface {
	// CreateWithLineItems creates an invoice with its line items in a single
	// transaction.
	CreateWithLineItems(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	ListByCustomer(ctx context.Context, customerID string) ([]*Invoice, error)
	// ListOutstanding returns non-deleted invoices whose raw status is draft,
	// pending or overdue.
	ListOutstanding(ctx context.Context) ([]*Invoice, error)

	// ListOutstandingAllTenants returns outstanding invoices across every
	// tenant, ordered by due date ascending, capped at limit. Used by the
	// scheduled reminder pass, which sets the tenant context per row.
	ListOutstandingAllTenants(ctx context.Context, limit int) ([]*Invoice, error)

	// GetByBillingCycleID returns the invoice linked to the given cycle, if
	// any. This is the idempotency lookup that keeps overlapping generator
	// invocations from double-billing a cycle.
	GetByBillingCycleID(ctx context.Context, cycleID string) (*Invoice, error)

	// GetNextInvoiceNumber atomically increments and returns the tenant's
	// invoice sequence for the current month.
	GetNextInvoiceNumber(ctx context.Context) (string, error)
}

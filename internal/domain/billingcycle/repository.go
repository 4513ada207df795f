package billingcycle

import (
	"context"
	"time"

	"github.com/cadencehq/cadence/internal/types"
)

// Repository provides access to billing cycle storage. Except where noted,
// operations are scoped to the tenant carried in the context.
type Repository interface {
	Create(ctx context.Context, cycle *BillingCycle) error
	Get(ctx context.Context, id string) (*BillingCycle, error)
	Update(ctx context.Context, cycle *BillingCycle) error
	ListByService(ctx context.Context, serviceID string) ([]*BillingCycle, error)
	// ListOpenByService returns pending or invoicing cycles for a service.
	ListOpenByService(ctx context.Context, serviceID string) ([]*BillingCycle, error)

	// ListDueAllTenants returns pending cycles across every tenant whose
	// period has elapsed and whose owning service is not soft-deleted,
	// ordered by period_end ascending so the oldest obligations are
	// processed first. The limit caps one batch invocation's work.
	ListDueAllTenants(ctx context.Context, before time.Time, limit int) ([]*BillingCycle, error)

	// ListStuckInvoicing returns cycles across every tenant left in the
	// invoicing intermediate state by an interrupted run.
	ListStuckInvoicing(ctx context.Context, before time.Time, limit int) ([]*BillingCycle, error)

	// TransitionStatus performs a compare-and-swap status transition guarded
	// on the current status. It returns false when the cycle was not in the
	// expected state, which means another invocation owns it.
	TransitionStatus(ctx context.Context, id string, from, to types.BillingCycleStatus) (bool, error)

	// MarkInvoiced links the cycle to its invoice and sets the terminal
	// invoiced status.
	MarkInvoiced(ctx context.Context, id string, invoiceID string) error
}

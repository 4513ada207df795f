package billingcycle

import (
	"time"

	"github.com/cadencehq/cadence/ent"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// BillingCycle represents a billable time window for a service. The amount is
// a snapshot of the service amount at creation time; price changes never
// retroactively alter open cycles.
type BillingCycle struct {
	ID          string                   `json:"id"`
	ServiceID   string                   `json:"service_id"`
	CustomerID  string                   `json:"customer_id"`
	PeriodStart time.Time                `json:"period_start"`
	PeriodEnd   time.Time                `json:"period_end"`
	DueDate     time.Time                `json:"due_date"`
	Amount      decimal.Decimal          `json:"amount"`
	CycleStatus types.BillingCycleStatus `json:"cycle_status"`
	InvoiceID   *string                  `json:"invoice_id,omitempty"`
	types.BaseModel
}

// FromEnt converts an ent.BillingCycle to domain BillingCycle
func FromEnt(e *ent.BillingCycle) *BillingCycle {
	if e == nil {
		return nil
	}

	return &BillingCycle{
		ID:          e.ID,
		ServiceID:   e.ServiceID,
		CustomerID:  e.CustomerID,
		PeriodStart: e.PeriodStart,
		PeriodEnd:   e.PeriodEnd,
		DueDate:     e.DueDate,
		Amount:      e.Amount,
		CycleStatus: types.BillingCycleStatus(e.CycleStatus),
		InvoiceID:   e.InvoiceID,
		BaseModel: types.BaseModel{
			TenantID:  e.TenantID,
			Status:    types.Status(e.Status),
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
			CreatedBy: e.CreatedBy,
			UpdatedBy: e.UpdatedBy,
		},
	}
}

// FromEntList converts a list of ent.BillingCycle to domain BillingCycles
func FromEntList(list []*ent.BillingCycle) []*BillingCycle {
	if list == nil {
		return nil
	}
	cycles := make([]*BillingCycle, len(list))
	for i, item := range list {
		cycles[i] = FromEnt(item)
	}
	return cycles
}

// IsOpen reports whether the cycle has not yet been invoiced or skipped.
func (c *BillingCycle) IsOpen() bool {
	return c.CycleStatus == types.BillingCycleStatusPending ||
		c.CycleStatus == types.BillingCycleStatusInvoicing
}

func (c *BillingCycle) Validate() error {
	if !c.PeriodEnd.After(c.PeriodStart) {
		return ierr.NewError("period_end must be after period_start").
			WithHint("Billing cycle period end must be after period start").
			Mark(ierr.ErrValidation)
	}

	if c.Amount.IsNegative() {
		return ierr.NewError("amount must be non negative").
			WithHint("Billing cycle amount must be non negative").
			Mark(ierr.ErrValidation)
	}

	return nil
}

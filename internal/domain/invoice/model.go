package invoice

import (
	"time"

	"github.com/cadencehq/cadence/ent"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents a billing document. Created by the cycle generator (or
// manual entry outside this core); after creation the engine never mutates it
// except through its own generation step.
type Invoice struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customer_id"`
	ServiceID      *string             `json:"service_id,omitempty"`
	BillingCycleID *string             `json:"billing_cycle_id,omitempty"`
	InvoiceNumber  string              `json:"invoice_number"`
	IssueDate      time.Time           `json:"issue_date"`
	DueDate        *time.Time          `json:"due_date,omitempty"`
	InvoiceStatus  types.InvoiceStatus `json:"invoice_status"`
	Total          decimal.Decimal     `json:"total"`
	IsLateIssued   bool                `json:"is_late_issued"`
	PaidAt         *time.Time          `json:"paid_at,omitempty"`
	VoidedAt       *time.Time          `json:"voided_at,omitempty"`
	LineItems      []*LineItem         `json:"line_items,omitempty"`
	types.BaseModel
}

// LineItem represents a single line on an invoice.
type LineItem struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	ServiceID   *string         `json:"service_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    decimal.Decimal `json:"quantity"`
	PeriodStart *time.Time      `json:"period_start,omitempty"`
	PeriodEnd   *time.Time      `json:"period_end,omitempty"`
	types.BaseModel
}

// FromEnt converts an ent.Invoice to domain Invoice
func FromEnt(e *ent.Invoice) *Invoice {
	if e == nil {
		return nil
	}

	var lineItems []*LineItem
	if e.Edges.LineItems != nil {
		lineItems = make([]*LineItem, len(e.Edges.LineItems))
		for i, item := range e.Edges.LineItems {
			lineItems[i] = LineItemFromEnt(item)
		}
	}

	return &Invoice{
		ID:             e.ID,
		CustomerID:     e.CustomerID,
		ServiceID:      e.ServiceID,
		BillingCycleID: e.BillingCycleID,
		InvoiceNumber:  e.InvoiceNumber,
		IssueDate:      e.IssueDate,
		DueDate:        e.DueDate,
		InvoiceStatus:  types.InvoiceStatus(e.InvoiceStatus),
		Total:          e.Total,
		IsLateIssued:   e.IsLateIssued,
		PaidAt:         e.PaidAt,
		VoidedAt:       e.VoidedAt,
		LineItems:      lineItems,
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

// LineItemFromEnt converts an ent.InvoiceLineItem to a domain LineItem
func LineItemFromEnt(e *ent.InvoiceLineItem) *LineItem {
	if e == nil {
		return nil
	}

	return &LineItem{
		ID:          e.ID,
		InvoiceID:   e.InvoiceID,
		ServiceID:   e.ServiceID,
		Description: e.Description,
		Amount:      e.Amount,
		Quantity:    e.Quantity,
		PeriodStart: e.PeriodStart,
		PeriodEnd:   e.PeriodEnd,
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

// FromEntList converts a list of ent.Invoice to domain Invoices
func FromEntList(list []*ent.Invoice) []*Invoice {
	if list == nil {
		return nil
	}
	invoices := make([]*Invoice, len(list))
	for i, item := range list {
		invoices[i] = FromEnt(item)
	}
	return invoices
}

// IsDeleted reports whether the invoice is soft-deleted.
func (i *Invoice) IsDeleted() bool {
	return i.Status == types.StatusDeleted
}

func (i *Invoice) Validate() error {
	if i.Total.IsNegative() {
		return ierr.NewError("total must be non negative").
			WithHint("Invoice total must be non negative").
			Mark(ierr.ErrValidation)
	}

	// The total must equal the sum of line items.
	if len(i.LineItems) > 0 {
		sum := decimal.Zero
		for _, item := range i.LineItems {
			sum = sum.Add(item.Amount)
		}
		if !sum.Equal(i.Total) {
			return ierr.NewError("total does not match line items").
				WithHintf("Invoice total %s must equal line item sum %s", i.Total, sum).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

package dto

import (
	"time"

	"github.com/cadencehq/cadence/internal/domain/invoice"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// InvoiceResponse represents an invoice with its resolved effective status.
// invoice_status carries the derived value; raw_status is the persisted one.
type InvoiceResponse struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customer_id"`
	ServiceID      *string             `json:"service_id,omitempty"`
	BillingCycleID *string             `json:"billing_cycle_id,omitempty"`
	InvoiceNumber  string              `json:"invoice_number"`
	IssueDate      time.Time           `json:"issue_date"`
	DueDate        *time.Time          `json:"due_date,omitempty"`
	InvoiceStatus  types.InvoiceStatus `json:"invoice_status"`
	RawStatus      types.InvoiceStatus `json:"raw_status"`
	Total          decimal.Decimal     `json:"total"`
	IsLateIssued   bool                `json:"is_late_issued"`
	PaidAt         *time.Time          `json:"paid_at,omitempty"`
	VoidedAt       *time.Time          `json:"voided_at,omitempty"`
	LineItems      []*LineItemResponse `json:"line_items,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type LineItemResponse struct {
	ID          string          `json:"id"`
	ServiceID   *string         `json:"service_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    decimal.Decimal `json:"quantity"`
	PeriodStart *time.Time      `json:"period_start,omitempty"`
	PeriodEnd   *time.Time      `json:"period_end,omitempty"`
}

// NewInvoiceResponse builds the response with the given resolved status.
func NewInvoiceResponse(inv *invoice.Invoice, effectiveStatus types.InvoiceStatus) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:             inv.ID,
		CustomerID:     inv.CustomerID,
		ServiceID:      inv.ServiceID,
		BillingCycleID: inv.BillingCycleID,
		InvoiceNumber:  inv.InvoiceNumber,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		InvoiceStatus:  effectiveStatus,
		RawStatus:      inv.InvoiceStatus,
		Total:          inv.Total,
		IsLateIssued:   inv.IsLateIssued,
		PaidAt:         inv.PaidAt,
		VoidedAt:       inv.VoidedAt,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}

	for _, item := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, &LineItemResponse{
			ID:          item.ID,
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
			PeriodStart: item.PeriodStart,
			PeriodEnd:   item.PeriodEnd,
		})
	}

	return resp
}

// FinancialSummaryResponse is a customer's financial standing derived from
// its invoice list.
type FinancialSummaryResponse struct {
	CustomerID   string          `json:"customer_id"`
	TotalDebt    decimal.Decimal `json:"total_debt"`
	FutureDebt   decimal.Decimal `json:"future_debt"`
	OverdueCount int             `json:"overdue_count"`
}

// Package billing holds the pure status-resolution policy for invoices,
// billing cycles and services. Every function is deterministic given the
// supplied now timestamp and performs no I/O, so callers across the engine
// (and its tests) agree on one set of rules.
package billing

import (
	"time"

	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/invoice"
	"github.com/cadencehq/cadence/internal/domain/service"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// FinancialSummary is the aggregate exposure derived from an invoice list.
type FinancialSummary struct {
	TotalDebt    decimal.Decimal `json:"total_debt"`
	FutureDebt   decimal.Decimal `json:"future_debt"`
	OverdueCount int             `json:"overdue_count"`
}

// ResolveInvoiceStatus derives the effective status of an invoice from its
// raw stored status and the current time. A paid or void invoice keeps that
// status regardless of its due date; a pending invoice becomes overdue once
// the end of its due day has passed.
func ResolveInvoiceStatus(inv *invoice.Invoice, now time.Time) types.InvoiceStatus {
	switch inv.InvoiceStatus {
	case types.InvoiceStatusPaid:
		return types.InvoiceStatusPaid
	case types.InvoiceStatusVoid:
		return types.InvoiceStatusVoid
	case types.InvoiceStatusOverdue:
		// Older writers persisted overdue directly.
		return types.InvoiceStatusOverdue
	case types.InvoiceStatusPending, types.InvoiceStatusDraft:
		if inv.DueDate == nil {
			return types.InvoiceStatusPending
		}
		if types.EndOfDay(*inv.DueDate).Before(now) {
			return types.InvoiceStatusOverdue
		}
		return types.InvoiceStatusPending
	case "":
		return types.InvoiceStatusDraft
	default:
		return types.InvoiceStatusPending
	}
}

// IsInvoiceActionable reports whether an effective status still expects
// payment.
func IsInvoiceActionable(status types.InvoiceStatus) bool {
	return status == types.InvoiceStatusPending || status == types.InvoiceStatusOverdue
}

// ResolveCycleStatus derives the effective status of a billing cycle.
// linkedInvoice is the invoice the cycle points at, nil when the cycle has
// not been invoiced yet.
//
// An invoiced cycle is operationally done regardless of payment state: a
// linked invoice that is still pending or overdue resolves the cycle to
// completed, not to some waiting state. This conflates "invoiced" with
// "settled" and is a pending product decision; callers and tests rely on the
// current behavior.
func ResolveCycleStatus(cycle *billingcycle.BillingCycle, linkedInvoice *invoice.Invoice, now time.Time) types.EffectiveCycleStatus {
	if cycle.CycleStatus == types.BillingCycleStatusSkipped {
		return types.EffectiveCycleStatusSkipped
	}

	if linkedInvoice != nil {
		switch ResolveInvoiceStatus(linkedInvoice, now) {
		case types.InvoiceStatusPaid:
			return types.EffectiveCycleStatusCompleted
		case types.InvoiceStatusVoid:
			return types.EffectiveCycleStatusSkipped
		default:
			return types.EffectiveCycleStatusCompleted
		}
	}

	if now.Before(types.StartOfDay(cycle.PeriodStart)) {
		return types.EffectiveCycleStatusFuture
	}

	// A cycle past its end but not yet invoiced is still running, not
	// completed: completion is reached only through invoicing.
	return types.EffectiveCycleStatusRunning
}

// ResolveServiceState derives the effective state of a service from its raw
// stored status. The legacy completed value collapses to cancelled: there is
// no distinct archived state.
func ResolveServiceState(svc *service.Service) types.ServiceStatus {
	switch svc.ServiceStatus {
	case types.ServiceStatusActive:
		return types.ServiceStatusActive
	case types.ServiceStatusPaused:
		return types.ServiceStatusPaused
	case types.ServiceStatusCancelled, types.ServiceStatusCompleted:
		return types.ServiceStatusCancelled
	default:
		return types.ServiceStatusDraft
	}
}

// DeriveServiceHealth classifies a service's operational health from its
// state and invoice list. Health is not applicable to draft or paused
// services.
func DeriveServiceHealth(svc *service.Service, invoices []*invoice.Invoice, now time.Time) types.ServiceHealth {
	switch ResolveServiceState(svc) {
	case types.ServiceStatusCancelled:
		return types.ServiceHealthChurned
	case types.ServiceStatusDraft, types.ServiceStatusPaused:
		return types.ServiceHealthInvariant
	}

	for _, inv := range invoices {
		if inv.IsDeleted() {
			continue
		}
		if ResolveInvoiceStatus(inv, now) == types.InvoiceStatusOverdue {
			return types.ServiceHealthAtRisk
		}
	}

	return types.ServiceHealthHealthy
}

// DeriveFinancialSummary aggregates exposure over an invoice list by
// effective status: overdue invoices contribute to total debt, pending ones
// to future debt, paid and void ones to nothing. Soft-deleted invoices are
// excluded.
func DeriveFinancialSummary(invoices []*invoice.Invoice, now time.Time) FinancialSummary {
	summary := FinancialSummary{
		TotalDebt:  decimal.Zero,
		FutureDebt: decimal.Zero,
	}

	for _, inv := range invoices {
		if inv.IsDeleted() {
			continue
		}

		switch ResolveInvoiceStatus(inv, now) {
		case types.InvoiceStatusOverdue:
			summary.TotalDebt = summary.TotalDebt.Add(inv.Total)
			summary.OverdueCount++
		case types.InvoiceStatusPending:
			summary.FutureDebt = summary.FutureDebt.Add(inv.Total)
		}
	}

	return summary
}

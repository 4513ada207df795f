package billing

import (
	"testing"
	"time"

	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/invoice"
	"github.com/cadencehq/cadence/internal/domain/service"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestResolveInvoiceStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  types.InvoiceStatus
		dueDate *time.Time
		want    types.InvoiceStatus
	}{
		{
			name:    "paid stays paid even past due date",
			status:  types.InvoiceStatusPaid,
			dueDate: timePtr(testNow.AddDate(0, 0, -30)),
			want:    types.InvoiceStatusPaid,
		},
		{
			name:    "void stays void even past due date",
			status:  types.InvoiceStatusVoid,
			dueDate: timePtr(testNow.AddDate(0, 0, -30)),
			want:    types.InvoiceStatusVoid,
		},
		{
			name:    "pending before due date stays pending",
			status:  types.InvoiceStatusPending,
			dueDate: timePtr(testNow.AddDate(0, 0, 10)),
			want:    types.InvoiceStatusPending,
		},
		{
			name:    "pending on the due day stays pending until end of day",
			status:  types.InvoiceStatusPending,
			dueDate: timePtr(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)),
			want:    types.InvoiceStatusPending,
		},
		{
			name:    "pending past end of due day becomes overdue",
			status:  types.InvoiceStatusPending,
			dueDate: timePtr(time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC)),
			want:    types.InvoiceStatusOverdue,
		},
		{
			name:   "pending without due date stays pending",
			status: types.InvoiceStatusPending,
			want:   types.InvoiceStatusPending,
		},
		{
			name:    "draft past due day resolves overdue",
			status:  types.InvoiceStatusDraft,
			dueDate: timePtr(testNow.AddDate(0, 0, -2)),
			want:    types.InvoiceStatusOverdue,
		},
		{
			name:    "persisted overdue stays overdue",
			status:  types.InvoiceStatusOverdue,
			dueDate: timePtr(testNow.AddDate(0, 0, 10)),
			want:    types.InvoiceStatusOverdue,
		},
		{
			name:   "empty status resolves draft",
			status: "",
			want:   types.InvoiceStatusDraft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &invoice.Invoice{
				InvoiceStatus: tt.status,
				DueDate:       tt.dueDate,
			}
			assert.Equal(t, tt.want, ResolveInvoiceStatus(inv, testNow))
		})
	}
}

func TestIsInvoiceActionable(t *testing.T) {
	assert.True(t, IsInvoiceActionable(types.InvoiceStatusPending))
	assert.True(t, IsInvoiceActionable(types.InvoiceStatusOverdue))
	assert.False(t, IsInvoiceActionable(types.InvoiceStatusPaid))
	assert.False(t, IsInvoiceActionable(types.InvoiceStatusVoid))
	assert.False(t, IsInvoiceActionable(types.InvoiceStatusDraft))
}

func TestResolveCycleStatus(t *testing.T) {
	baseCycle := func(status types.BillingCycleStatus, start, end time.Time) *billingcycle.BillingCycle {
		return &billingcycle.BillingCycle{
			CycleStatus: status,
			PeriodStart: start,
			PeriodEnd:   end,
		}
	}

	t.Run("skipped cycle resolves skipped", func(t *testing.T) {
		cycle := baseCycle(types.BillingCycleStatusSkipped, testNow.AddDate(0, -1, 0), testNow)
		assert.Equal(t, types.EffectiveCycleStatusSkipped, ResolveCycleStatus(cycle, nil, testNow))
	})

	t.Run("linked paid invoice resolves completed", func(t *testing.T) {
		cycle := baseCycle(types.BillingCycleStatusInvoiced, testNow.AddDate(0, -1, 0), testNow)
		inv := &invoice.Invoice{InvoiceStatus: types.InvoiceStatusPaid}
		assert.Equal(t, types.EffectiveCycleStatusCompleted, ResolveCycleStatus(cycle, inv, testNow))
	})

	t.Run("linked void invoice resolves skipped", func(t *testing.T) {
		cycle := baseCycle(types.BillingCycleStatusInvoiced, testNow.AddDate(0, -1, 0), testNow)
		inv := &invoice.Invoice{InvoiceStatus: types.InvoiceStatusVoid}
		assert.Equal(t, types.EffectiveCycleStatusSkipped, ResolveCycleStatus(cycle, inv, testNow))
	})

	t.Run("linked unpaid invoice still resolves completed", func(t *testing.T) {
		cycle := baseCycle(types.BillingCycleStatusInvoiced, testNow.AddDate(0, -1, 0), testNow)

		pending := &invoice.Invoice{
			InvoiceStatus: types.InvoiceStatusPending,
			DueDate:       timePtr(testNow.AddDate(0, 0, 10)),
		}
		assert.Equal(t, types.EffectiveCycleStatusCompleted, ResolveCycleStatus(cycle, pending, testNow))

		overdue := &invoice.Invoice{
			InvoiceStatus: types.InvoiceStatusPending,
			DueDate:       timePtr(testNow.AddDate(0, 0, -10)),
		}
		assert.Equal(t, types.EffectiveCycleStatusCompleted, ResolveCycleStatus(cycle, overdue, testNow))
	})

	t.Run("cycle starting in the future resolves future", func(t *testing.T) {
		cycle := baseCycle(types.BillingCycleStatusPending, testNow.AddDate(0, 0, 5), testNow.AddDate(0, 1, 5))
		assert.Equal(t, types.EffectiveCycleStatusFuture, ResolveCycleStatus(cycle, nil, testNow))
	})

	t.Run("cycle within its period resolves running", func(t *testing.T) {
		cycle := baseCycle(types.BillingCycleStatusPending, testNow.AddDate(0, 0, -5), testNow.AddDate(0, 0, 25))
		assert.Equal(t, types.EffectiveCycleStatusRunning, ResolveCycleStatus(cycle, nil, testNow))
	})

	t.Run("cycle past its end without an invoice stays running", func(t *testing.T) {
		cycle := baseCycle(types.BillingCycleStatusPending, testNow.AddDate(0, -2, 0), testNow.AddDate(0, -1, 0))
		assert.Equal(t, types.EffectiveCycleStatusRunning, ResolveCycleStatus(cycle, nil, testNow))
	})
}

func TestResolveServiceState(t *testing.T) {
	tests := []struct {
		raw  types.ServiceStatus
		want types.ServiceStatus
	}{
		{types.ServiceStatusDraft, types.ServiceStatusDraft},
		{types.ServiceStatusActive, types.ServiceStatusActive},
		{types.ServiceStatusPaused, types.ServiceStatusPaused},
		{types.ServiceStatusCancelled, types.ServiceStatusCancelled},
		{types.ServiceStatusCompleted, types.ServiceStatusCancelled},
		{"", types.ServiceStatusDraft},
	}

	for _, tt := range tests {
		svc := &service.Service{ServiceStatus: tt.raw}
		assert.Equal(t, tt.want, ResolveServiceState(svc), "raw status %q", tt.raw)
	}
}

func TestDeriveServiceHealth(t *testing.T) {
	activeSvc := &service.Service{ServiceStatus: types.ServiceStatusActive}

	t.Run("cancelled service is churned", func(t *testing.T) {
		svc := &service.Service{ServiceStatus: types.ServiceStatusCancelled}
		assert.Equal(t, types.ServiceHealthChurned, DeriveServiceHealth(svc, nil, testNow))
	})

	t.Run("legacy completed service is churned", func(t *testing.T) {
		svc := &service.Service{ServiceStatus: types.ServiceStatusCompleted}
		assert.Equal(t, types.ServiceHealthChurned, DeriveServiceHealth(svc, nil, testNow))
	})

	t.Run("draft and paused services have no health", func(t *testing.T) {
		draft := &service.Service{ServiceStatus: types.ServiceStatusDraft}
		paused := &service.Service{ServiceStatus: types.ServiceStatusPaused}
		assert.Equal(t, types.ServiceHealthInvariant, DeriveServiceHealth(draft, nil, testNow))
		assert.Equal(t, types.ServiceHealthInvariant, DeriveServiceHealth(paused, nil, testNow))
	})

	t.Run("active service with an overdue invoice is at risk", func(t *testing.T) {
		invoices := []*invoice.Invoice{
			{InvoiceStatus: types.InvoiceStatusPaid},
			{InvoiceStatus: types.InvoiceStatusPending, DueDate: timePtr(testNow.AddDate(0, 0, -5))},
		}
		assert.Equal(t, types.ServiceHealthAtRisk, DeriveServiceHealth(activeSvc, invoices, testNow))
	})

	t.Run("overdue invoice on a deleted row is ignored", func(t *testing.T) {
		deleted := &invoice.Invoice{
			InvoiceStatus: types.InvoiceStatusPending,
			DueDate:       timePtr(testNow.AddDate(0, 0, -5)),
		}
		deleted.Status = types.StatusDeleted
		assert.Equal(t, types.ServiceHealthHealthy, DeriveServiceHealth(activeSvc, []*invoice.Invoice{deleted}, testNow))
	})

	t.Run("active service with only settled invoices is healthy", func(t *testing.T) {
		invoices := []*invoice.Invoice{
			{InvoiceStatus: types.InvoiceStatusPaid},
			{InvoiceStatus: types.InvoiceStatusPending, DueDate: timePtr(testNow.AddDate(0, 0, 10))},
		}
		assert.Equal(t, types.ServiceHealthHealthy, DeriveServiceHealth(activeSvc, invoices, testNow))
	})
}

func TestDeriveFinancialSummary(t *testing.T) {
	invoices := []*invoice.Invoice{
		{
			InvoiceStatus: types.InvoiceStatusPending,
			DueDate:       timePtr(testNow.AddDate(0, 0, -10)),
			Total:         decimal.NewFromInt(100),
		},
		{
			InvoiceStatus: types.InvoiceStatusOverdue,
			Total:         decimal.NewFromInt(50),
		},
		{
			InvoiceStatus: types.InvoiceStatusPending,
			DueDate:       timePtr(testNow.AddDate(0, 0, 10)),
			Total:         decimal.NewFromInt(30),
		},
		{
			InvoiceStatus: types.InvoiceStatusPaid,
			Total:         decimal.NewFromInt(999),
		},
		{
			InvoiceStatus: types.InvoiceStatusVoid,
			Total:         decimal.NewFromInt(999),
		},
	}

	summary := DeriveFinancialSummary(invoices, testNow)
	assert.True(t, summary.TotalDebt.Equal(decimal.NewFromInt(150)), "total debt %s", summary.TotalDebt)
	assert.True(t, summary.FutureDebt.Equal(decimal.NewFromInt(30)), "future debt %s", summary.FutureDebt)
	assert.Equal(t, 2, summary.OverdueCount)

	t.Run("deleted invoices are excluded", func(t *testing.T) {
		deleted := &invoice.Invoice{
			InvoiceStatus: types.InvoiceStatusOverdue,
			Total:         decimal.NewFromInt(500),
		}
		deleted.Status = types.StatusDeleted

		summary := DeriveFinancialSummary([]*invoice.Invoice{deleted}, testNow)
		assert.True(t, summary.TotalDebt.IsZero())
		assert.Equal(t, 0, summary.OverdueCount)
	})
}

package types

// BillingCycleStatus is the raw stored status of a billing cycle. The
// transitions form a small state machine per cycle:
//
//	pending -> invoicing -> invoiced
//	pending -> skipped
//
// invoicing is the saga intermediate held while the generator's multi-step
// writes are in flight; the reconciliation pass resolves cycles stuck there.
type BillingCycleStatus string

const (
	BillingCycleStatusPending   BillingCycleStatus = "pending"
	BillingCycleStatusInvoicing BillingCycleStatus = "invoicing"
	BillingCycleStatusInvoiced  BillingCycleStatus = "invoiced"
	BillingCycleStatusSkipped   BillingCycleStatus = "skipped"
)

// EffectiveCycleStatus is the derived classification of a cycle, never stored.
type EffectiveCycleStatus string

const (
	EffectiveCycleStatusFuture    EffectiveCycleStatus = "future"
	EffectiveCycleStatusRunning   EffectiveCycleStatus = "running"
	EffectiveCycleStatusCompleted EffectiveCycleStatus = "completed"
	EffectiveCycleStatusSkipped   EffectiveCycleStatus = "skipped"
)

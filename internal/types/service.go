package types

// BillingType determines whether a service bills on a recurring schedule or
// exactly once.
type BillingType string

const (
	BillingTypeRecurring BillingType = "recurring"
	BillingTypeOneOff    BillingType = "one_off"
)

func (b BillingType) Validate() bool {
	switch b {
	case BillingTypeRecurring, BillingTypeOneOff:
		return true
	}
	return false
}

// BillingFrequency is the cadence of a recurring service. Required iff the
// billing type is recurring.
type BillingFrequency string

const (
	BillingFrequencyBiweekly   BillingFrequency = "biweekly"
	BillingFrequencyMonthly    BillingFrequency = "monthly"
	BillingFrequencyQuarterly  BillingFrequency = "quarterly"
	BillingFrequencySemiannual BillingFrequency = "semiannual"
	BillingFrequencyYearly     BillingFrequency = "yearly"
)

func (f BillingFrequency) Validate() bool {
	switch f {
	case BillingFrequencyBiweekly, BillingFrequencyMonthly, BillingFrequencyQuarterly,
		BillingFrequencySemiannual, BillingFrequencyYearly:
		return true
	}
	return false
}

// ServiceStatus is the raw stored status of a service. Legacy rows may carry
// "completed", which the resolver collapses to cancelled.
type ServiceStatus string

const (
	ServiceStatusDraft     ServiceStatus = "draft"
	ServiceStatusActive    ServiceStatus = "active"
	ServiceStatusPaused    ServiceStatus = "paused"
	ServiceStatusCancelled ServiceStatus = "cancelled"

	// ServiceStatusCompleted is a legacy raw value still present in older rows.
	ServiceStatusCompleted ServiceStatus = "completed"
)

// ServiceHealth is a derived operational classification of a service, never
// stored.
type ServiceHealth string

const (
	ServiceHealthHealthy ServiceHealth = "healthy"
	ServiceHealthAtRisk  ServiceHealth = "at_risk"
	ServiceHealthChurned ServiceHealth = "churned"
	// ServiceHealthInvariant means health is not applicable for the service's
	// current state (draft or paused).
	ServiceHealthInvariant ServiceHealth = "invariant"
)

package service

import (
	"time"

	"github.com/cadencehq/cadence/ent"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// Service represents a sellable, billable unit tied to a customer. An active
// recurring service has at most one open (pending or invoicing) billing cycle
// at any time.
type Service struct {
	ID               string                 `json:"id"`
	CustomerID       string                 `json:"customer_id"`
	Name             string                 `json:"name"`
	Amount           decimal.Decimal        `json:"amount"`
	BillingType      types.BillingType      `json:"billing_type"`
	BillingFrequency types.BillingFrequency `json:"billing_frequency,omitempty"`
	ServiceStatus    types.ServiceStatus    `json:"service_status"`
	NextBillingDate  *time.Time             `json:"next_billing_date,omitempty"`
	ActivatedAt      *time.Time             `json:"activated_at,omitempty"`
	types.BaseModel
}

// FromEnt converts an ent.Service to domain Service
func FromEnt(e *ent.Service) *Service {
	if e == nil {
		return nil
	}

	return &Service{
		ID:               e.ID,
		CustomerID:       e.CustomerID,
		Name:             e.Name,
		Amount:           e.Amount,
		BillingType:      types.BillingType(e.BillingType),
		BillingFrequency: types.BillingFrequency(e.BillingFrequency),
		ServiceStatus:    types.ServiceStatus(e.ServiceStatus),
		NextBillingDate:  e.NextBillingDate,
		ActivatedAt:      e.ActivatedAt,
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

// FromEntList converts a list of ent.Service to domain Services
func FromEntList(list []*ent.Service) []*Service {
	if list == nil {
		return nil
	}
	services := make([]*Service, len(list))
	for i, item := range list {
		services[i] = FromEnt(item)
	}
	return services
}

// IsRecurring reports whether the service bills on a recurring schedule.
func (s *Service) IsRecurring() bool {
	return s.BillingType == types.BillingTypeRecurring
}

// IsDeleted reports whether the service is soft-deleted.
func (s *Service) IsDeleted() bool {
	return s.Status == types.StatusDeleted
}

func (s *Service) Validate() error {
	if s.Amount.IsNegative() {
		return ierr.NewError("amount must be non negative").
			WithHint("Service amount must be non negative").
			Mark(ierr.ErrValidation)
	}

	if !s.BillingType.Validate() {
		return ierr.NewError("invalid billing type").
			WithHintf("Billing type %s is not supported", s.BillingType).
			Mark(ierr.ErrValidation)
	}

	// Frequency is required iff the service is recurring.
	if s.BillingType == types.BillingTypeRecurring && !s.BillingFrequency.Validate() {
		return ierr.NewError("invalid billing frequency").
			WithHintf("Billing frequency %s is not supported for recurring services", s.BillingFrequency).
			Mark(ierr.ErrValidation)
	}

	if s.BillingType == types.BillingTypeOneOff && s.BillingFrequency != "" {
		return ierr.NewError("billing frequency set on one off service").
			WithHint("One off services must not carry a billing frequency").
			Mark(ierr.ErrValidation)
	}

	return nil
}

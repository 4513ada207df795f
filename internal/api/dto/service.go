package dto

import (
	"time"

	domainService "github.com/cadencehq/cadence/internal/domain/service"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/cadencehq/cadence/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest represents the request payload for creating a service
type CreateServiceRequest struct {
	CustomerID       string                 `json:"customer_id" validate:"required"`
	Name             string                 `json:"name" validate:"required"`
	Amount           decimal.Decimal        `json:"amount" validate:"required"`
	BillingType      types.BillingType      `json:"billing_type" validate:"required"`
	BillingFrequency types.BillingFrequency `json:"billing_frequency,omitempty"`
}

func (r *CreateServiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if !r.BillingType.Validate() {
		return ierr.NewError("invalid billing_type").
			WithHintf("Billing type %s is not recognized", r.BillingType).
			Mark(ierr.ErrValidation)
	}

	if r.BillingType == types.BillingTypeRecurring {
		if !r.BillingFrequency.Validate() {
			return ierr.NewError("invalid billing_frequency").
				WithHintf("Billing frequency %s is not recognized", r.BillingFrequency).
				Mark(ierr.ErrValidation)
		}
	} else if r.BillingFrequency != "" {
		return ierr.NewError("billing_frequency not allowed for one_off services").
			WithHint("One-off services must not carry a billing frequency").
			Mark(ierr.ErrValidation)
	}

	if r.Amount.IsNegative() {
		return ierr.NewError("amount must be non negative").
			WithHint("Service amount must be non negative").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// UpdateServiceAmountRequest changes the service amount for future cycles.
// Open cycles keep their snapshot.
type UpdateServiceAmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

func (r *UpdateServiceAmountRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return ierr.NewError("amount must be non negative").
			WithHint("Service amount must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ServiceResponse represents a service with its resolved effective state.
type ServiceResponse struct {
	ID               string                 `json:"id"`
	CustomerID       string                 `json:"customer_id"`
	Name             string                 `json:"name"`
	Amount           decimal.Decimal        `json:"amount"`
	BillingType      types.BillingType      `json:"billing_type"`
	BillingFrequency types.BillingFrequency `json:"billing_frequency,omitempty"`
	ServiceStatus    types.ServiceStatus    `json:"service_status"`
	RawStatus        types.ServiceStatus    `json:"raw_status"`
	Health           types.ServiceHealth    `json:"health,omitempty"`
	NextBillingDate  *time.Time             `json:"next_billing_date,omitempty"`
	ActivatedAt      *time.Time             `json:"activated_at,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`

	FinancialSummary *FinancialSummaryResponse `json:"financial_summary,omitempty"`
}

// NewServiceResponse builds the response with the given resolved state.
func NewServiceResponse(svc *domainService.Service, effectiveState types.ServiceStatus) *ServiceResponse {
	return &ServiceResponse{
		ID:               svc.ID,
		CustomerID:       svc.CustomerID,
		Name:             svc.Name,
		Amount:           svc.Amount,
		BillingType:      svc.BillingType,
		BillingFrequency: svc.BillingFrequency,
		ServiceStatus:    effectiveState,
		RawStatus:        svc.ServiceStatus,
		NextBillingDate:  svc.NextBillingDate,
		ActivatedAt:      svc.ActivatedAt,
		CreatedAt:        svc.CreatedAt,
		UpdatedAt:        svc.UpdatedAt,
	}
}

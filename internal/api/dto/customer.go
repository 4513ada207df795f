package dto

import (
	"time"

	"github.com/cadencehq/cadence/internal/domain/customer"
	"github.com/cadencehq/cadence/internal/validator"
)

// CreateCustomerRequest represents the request payload for creating a customer
type CreateCustomerRequest struct {
	ExternalID string `json:"external_id,omitempty"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:         c.ID,
		ExternalID: c.ExternalID,
		Name:       c.Name,
		Email:      c.Email,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

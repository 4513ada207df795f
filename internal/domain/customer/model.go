package customer

import (
	"github.com/cadencehq/cadence/ent"
	"github.com/cadencehq/cadence/internal/types"
)

// Customer represents a tenant-scoped client that services are billed to.
type Customer struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	types.BaseModel
}

// FromEnt converts an ent.Customer to domain Customer
func FromEnt(e *ent.Customer) *Customer {
	if e == nil {
		return nil
	}

	return &Customer{
		ID:         e.ID,
		ExternalID: e.ExternalID,
		Name:       e.Name,
		Email:      e.Email,
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

// FromEntList converts a list of ent.Customer to domain Customers
func FromEntList(list []*ent.Customer) []*Customer {
	if list == nil {
		return nil
	}
	customers := make([]*Customer, len(list))
	for i, item := range list {
		customers[i] = FromEnt(item)
	}
	return customers
}

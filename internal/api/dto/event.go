package dto

import (
	"time"

	"github.com/cadencehq/cadence/internal/domain/domainevent"
	"github.com/cadencehq/cadence/internal/types"
)

// DomainEventResponse represents one audit trail entry.
type DomainEventResponse struct {
	ID          string                      `json:"id"`
	EntityType  types.DomainEventEntityType `json:"entity_type"`
	EntityID    string                      `json:"entity_id"`
	EventType   types.DomainEventType       `json:"event_type"`
	Payload     map[string]interface{}      `json:"payload,omitempty"`
	TriggeredBy string                      `json:"triggered_by,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
}

func NewDomainEventResponse(e *domainevent.DomainEvent) *DomainEventResponse {
	return &DomainEventResponse{
		ID:          e.ID,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		EventType:   e.EventType,
		Payload:     e.Payload,
		TriggeredBy: e.TriggeredBy,
		CreatedAt:   e.CreatedAt,
	}
}

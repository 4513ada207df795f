package domainevent

import (
	"context"
	"time"

	"github.com/cadencehq/cadence/ent"
	"github.com/cadencehq/cadence/internal/types"
)

// DomainEvent is an immutable audit record of a state transition. Rows are
// written once per significant transition and never updated.
type DomainEvent struct {
	ID          string                      `json:"id"`
	TenantID    string                      `json:"tenant_id"`
	EntityType  types.DomainEventEntityType `json:"entity_type"`
	EntityID    string                      `json:"entity_id"`
	EventType   types.DomainEventType       `json:"event_type"`
	Payload     map[string]interface{}      `json:"payload,omitempty"`
	TriggeredBy string                      `json:"triggered_by,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
}

// New builds a domain event for the given transition with the triggering
// actor taken from the context.
func New(
	ctx context.Context,
	entityType types.DomainEventEntityType,
	entityID string,
	eventType types.DomainEventType,
	payload map[string]interface{},
) *DomainEvent {
	triggeredBy := types.GetUserID(ctx)
	if triggeredBy == "" {
		triggeredBy = types.TriggeredBySystem
	}
	tenantID := types.GetTenantID(ctx)

	return &DomainEvent{
		ID:          types.GenerateUUIDWithPrefix(types.UUIDPrefixDomainEvent),
		TenantID:    tenantID,
		EntityType:  entityType,
		EntityID:    entityID,
		EventType:   eventType,
		Payload:     payload,
		TriggeredBy: triggeredBy,
		CreatedAt:   time.Now().UTC(),
	}
}

// FromEnt converts an ent.DomainEvent to a domain DomainEvent
func FromEnt(e *ent.DomainEvent) *DomainEvent {
	if e == nil {
		return nil
	}

	return &DomainEvent{
		ID:          e.ID,
		TenantID:    e.TenantID,
		EntityType:  types.DomainEventEntityType(e.EntityType),
		EntityID:    e.EntityID,
		EventType:   types.DomainEventType(e.EventType),
		Payload:     e.Payload,
		TriggeredBy: e.TriggeredBy,
		CreatedAt:   e.CreatedAt,
	}
}

// FromEntList converts a list of ent.DomainEvent to domain DomainEvents
func FromEntList(list []*ent.DomainEvent) []*DomainEvent {
	if list == nil {
		return nil
	}
	events := make([]*DomainEvent, len(list))
	for i, item := range list {
		events[i] = FromEnt(item)
	}
	return events
}

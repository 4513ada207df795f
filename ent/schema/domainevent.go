package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"time"
)

// DomainEvent holds the schema definition for the DomainEvent entity, the
// append-only audit trail of state transitions. Rows are written once and
// never updated; the base mixin is intentionally not used.
type DomainEvent struct {
	ent.Schema
}

// Fields of the DomainEvent.
func (DomainEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("entity_type").
			NotEmpty().
			Immutable(),
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("triggered_by").
			Optional().
			Immutable(),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}

// Indexes of the DomainEvent.
func (DomainEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "entity_type", "entity_id"),
		index.Fields("tenant_id", "created_at"),
	}
}

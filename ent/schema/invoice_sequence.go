package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InvoiceSequence holds the schema definition for the per-tenant monthly
// invoice number counter. Incremented with a raw upsert-returning statement
// so concurrent generators never hand out the same number.
type InvoiceSequence struct {
	ent.Schema
}

// Fields of the InvoiceSequence.
func (InvoiceSequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("year_month").
			NotEmpty().
			Immutable(),
		field.Int64("last_value").
			Default(0),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the InvoiceSequence.
func (InvoiceSequence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "year_month").
			Unique(),
	}
}

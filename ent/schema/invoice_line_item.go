package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/cadencehq/cadence/ent/schema/mixin"
	"github.com/shopspring/decimal"
)

// InvoiceLineItem holds the schema definition for the InvoiceLineItem entity.
type InvoiceLineItem struct {
	ent.Schema
}

// Mixin of the InvoiceLineItem.
func (InvoiceLineItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the InvoiceLineItem.
func (InvoiceLineItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("invoice_id").
			NotEmpty().
			Immutable(),
		field.String("service_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("description").
			Optional(),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.Other("quantity", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.Time("period_start").
			Optional().
			Nillable(),
		field.Time("period_end").
			Optional().
			Nillable(),
	}
}

// Edges of the InvoiceLineItem.
func (InvoiceLineItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("line_items").
			Field("invoice_id").
			Immutable().
			Unique().
			Required(),
	}
}

// Indexes of the InvoiceLineItem.
func (InvoiceLineItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "invoice_id"),
	}
}

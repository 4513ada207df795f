package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/cadencehq/cadence/ent/schema/mixin"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// Index constraint names referenced by the repository layer when mapping
// constraint violations to domain errors.
const (
	Idx_tenant_invoice_number_unique = "idx_tenant_invoice_number_unique"
	Idx_tenant_billing_cycle_unique  = "idx_tenant_billing_cycle_unique"
)

// Invoice holds the schema definition for the Invoice entity.
type Invoice struct {
	ent.Schema
}

// Mixin of the Invoice.
func (Invoice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the Invoice.
func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("customer_id").
			NotEmpty().
			Immutable(),
		field.String("service_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("billing_cycle_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("invoice_number").
			NotEmpty(),
		field.Time("issue_date"),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.String("invoice_status").
			Default(string(types.InvoiceStatusDraft)),
		field.Other("total", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.Bool("is_late_issued").
			Default(false),
		field.Time("paid_at").
			Optional().
			Nillable(),
		field.Time("voided_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Invoice.
func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("line_items", InvoiceLineItem.Type),
	}
}

// Indexes of the Invoice.
func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "invoice_number").
			Unique().
			StorageKey(Idx_tenant_invoice_number_unique),
		index.Fields("tenant_id", "billing_cycle_id").
			Unique().
			StorageKey(Idx_tenant_billing_cycle_unique),
		index.Fields("tenant_id", "customer_id"),
	}
}

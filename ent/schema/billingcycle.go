package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/cadencehq/cadence/ent/schema/mixin"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// BillingCycle holds the schema definition for the BillingCycle entity, a
// billable time window belonging to a service. Cycles are never deleted, only
// marked skipped or invoiced.
type BillingCycle struct {
	ent.Schema
}

// Mixin of the BillingCycle.
func (BillingCycle) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the BillingCycle.
func (BillingCycle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("service_id").
			NotEmpty().
			Immutable(),
		field.String("customer_id").
			NotEmpty().
			Immutable(),
		field.Time("period_start").
			Immutable(),
		field.Time("period_end").
			Immutable(),
		field.Time("due_date"),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero).
			Immutable(),
		field.String("cycle_status").
			Default(string(types.BillingCycleStatusPending)),
		field.String("invoice_id").
			Optional().
			Nillable(),
	}
}

// Indexes of the BillingCycle.
func (BillingCycle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "service_id"),
		index.Fields("cycle_status", "period_end"),
	}
}

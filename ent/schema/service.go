package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/cadencehq/cadence/ent/schema/mixin"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/shopspring/decimal"
)

// Service holds the schema definition for the Service entity, the sellable
// billable unit tied to a customer.
type Service struct {
	ent.Schema
}

// Mixin of the Service.
func (Service) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the Service.
func (Service) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("customer_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.String("billing_type").
			Default(string(types.BillingTypeRecurring)),
		field.String("billing_frequency").
			Optional(),
		field.String("service_status").
			Default(string(types.ServiceStatusDraft)),
		field.Time("next_billing_date").
			Optional().
			Nillable(),
		field.Time("activated_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Service.
func (Service) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "customer_id"),
		index.Fields("tenant_id", "service_status"),
	}
}

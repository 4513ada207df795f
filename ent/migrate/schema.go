// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillingCyclesColumns holds the columns for the "billing_cycles" table.
	BillingCyclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "service_id", Type: field.TypeString},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "period_end", Type: field.TypeTime},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "cycle_status", Type: field.TypeString, Default: "pending"},
		{Name: "invoice_id", Type: field.TypeString, Nullable: true},
	}
	// BillingCyclesTable holds the schema information for the "billing_cycles" table.
	BillingCyclesTable = &schema.Table{
		Name:       "billing_cycles",
		Columns:    BillingCyclesColumns,
		PrimaryKey: []*schema.Column{BillingCyclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billingcycle_tenant_id_service_id",
				Unique:  false,
				Columns: []*schema.Column{BillingCyclesColumns[1], BillingCyclesColumns[7]},
			},
			{
				Name:    "billingcycle_cycle_status_period_end",
				Unique:  false,
				Columns: []*schema.Column{BillingCyclesColumns[13], BillingCyclesColumns[10]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_tenant_id_external_id",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[1], CustomersColumns[7]},
			},
		},
	}
	// DomainEventsColumns holds the columns for the "domain_events" table.
	DomainEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "triggered_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DomainEventsTable holds the schema information for the "domain_events" table.
	DomainEventsTable = &schema.Table{
		Name:       "domain_events",
		Columns:    DomainEventsColumns,
		PrimaryKey: []*schema.Column{DomainEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domainevent_tenant_id_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[1], DomainEventsColumns[2], DomainEventsColumns[3]},
			},
			{
				Name:    "domainevent_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[1], DomainEventsColumns[7]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "service_id", Type: field.TypeString, Nullable: true},
		{Name: "billing_cycle_id", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "issue_date", Type: field.TypeTime},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "invoice_status", Type: field.TypeString, Default: "draft"},
		{Name: "total", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "is_late_issued", Type: field.TypeBool, Default: false},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "voided_at", Type: field.TypeTime, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_tenant_invoice_number_unique",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[10]},
			},
			{
				Name:    "idx_tenant_billing_cycle_unique",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[9]},
			},
			{
				Name:    "invoice_tenant_id_customer_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[7]},
			},
		},
	}
	// InvoiceLineItemsColumns holds the columns for the "invoice_line_items" table.
	InvoiceLineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "service_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "quantity", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "period_start", Type: field.TypeTime, Nullable: true},
		{Name: "period_end", Type: field.TypeTime, Nullable: true},
		{Name: "invoice_id", Type: field.TypeString},
	}
	// InvoiceLineItemsTable holds the schema information for the "invoice_line_items" table.
	InvoiceLineItemsTable = &schema.Table{
		Name:       "invoice_line_items",
		Columns:    InvoiceLineItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceLineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_line_items_invoices_line_items",
				Columns:    []*schema.Column{InvoiceLineItemsColumns[13]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoicelineitem_tenant_id_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceLineItemsColumns[1], InvoiceLineItemsColumns[13]},
			},
		},
	}
	// InvoiceSequencesColumns holds the columns for the "invoice_sequences" table.
	InvoiceSequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "year_month", Type: field.TypeString},
		{Name: "last_value", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoiceSequencesTable holds the schema information for the "invoice_sequences" table.
	InvoiceSequencesTable = &schema.Table{
		Name:       "invoice_sequences",
		Columns:    InvoiceSequencesColumns,
		PrimaryKey: []*schema.Column{InvoiceSequencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoicesequence_tenant_id_year_month",
				Unique:  true,
				Columns: []*schema.Column{InvoiceSequencesColumns[1], InvoiceSequencesColumns[2]},
			},
		},
	}
	// ServicesColumns holds the columns for the "services" table.
	ServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "billing_type", Type: field.TypeString, Default: "recurring"},
		{Name: "billing_frequency", Type: field.TypeString, Nullable: true},
		{Name: "service_status", Type: field.TypeString, Default: "draft"},
		{Name: "next_billing_date", Type: field.TypeTime, Nullable: true},
		{Name: "activated_at", Type: field.TypeTime, Nullable: true},
	}
	// ServicesTable holds the schema information for the "services" table.
	ServicesTable = &schema.Table{
		Name:       "services",
		Columns:    ServicesColumns,
		PrimaryKey: []*schema.Column{ServicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "service_tenant_id_customer_id",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[1], ServicesColumns[7]},
			},
			{
				Name:    "service_tenant_id_service_status",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[1], ServicesColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillingCyclesTable,
		CustomersTable,
		DomainEventsTable,
		InvoicesTable,
		InvoiceLineItemsTable,
		InvoiceSequencesTable,
		ServicesTable,
	}
)

func init() {
	InvoiceLineItemsTable.ForeignKeys[0].RefTable = InvoicesTable
}

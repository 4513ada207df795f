// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cadencehq/cadence/ent/billingcycle"
	"github.com/cadencehq/cadence/ent/customer"
	"github.com/cadencehq/cadence/ent/domainevent"
	"github.com/cadencehq/cadence/ent/invoice"
	"github.com/cadencehq/cadence/ent/invoicelineitem"
	"github.com/cadencehq/cadence/ent/invoicesequence"
	"github.com/cadencehq/cadence/ent/schema"
	"github.com/cadencehq/cadence/ent/service"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billingcycleMixin := schema.BillingCycle{}.Mixin()
	billingcycleMixinFields0 := billingcycleMixin[0].Fields()
	_ = billingcycleMixinFields0
	billingcycleFields := schema.BillingCycle{}.Fields()
	_ = billingcycleFields
	// billingcycleDescTenantID is the schema descriptor for tenant_id field.
	billingcycleDescTenantID := billingcycleMixinFields0[0].Descriptor()
	// billingcycle.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	billingcycle.TenantIDValidator = billingcycleDescTenantID.Validators[0].(func(string) error)
	// billingcycleDescStatus is the schema descriptor for status field.
	billingcycleDescStatus := billingcycleMixinFields0[1].Descriptor()
	// billingcycle.DefaultStatus holds the default value on creation for the status field.
	billingcycle.DefaultStatus = billingcycleDescStatus.Default.(string)
	// billingcycleDescCreatedAt is the schema descriptor for created_at field.
	billingcycleDescCreatedAt := billingcycleMixinFields0[2].Descriptor()
	// billingcycle.DefaultCreatedAt holds the default value on creation for the created_at field.
	billingcycle.DefaultCreatedAt = billingcycleDescCreatedAt.Default.(func() time.Time)
	// billingcycleDescUpdatedAt is the schema descriptor for updated_at field.
	billingcycleDescUpdatedAt := billingcycleMixinFields0[3].Descriptor()
	// billingcycle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	billingcycle.DefaultUpdatedAt = billingcycleDescUpdatedAt.Default.(func() time.Time)
	// billingcycle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	billingcycle.UpdateDefaultUpdatedAt = billingcycleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billingcycleDescServiceID is the schema descriptor for service_id field.
	billingcycleDescServiceID := billingcycleFields[1].Descriptor()
	// billingcycle.ServiceIDValidator is a validator for the "service_id" field. It is called by the builders before save.
	billingcycle.ServiceIDValidator = billingcycleDescServiceID.Validators[0].(func(string) error)
	// billingcycleDescCustomerID is the schema descriptor for customer_id field.
	billingcycleDescCustomerID := billingcycleFields[2].Descriptor()
	// billingcycle.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	billingcycle.CustomerIDValidator = billingcycleDescCustomerID.Validators[0].(func(string) error)
	// billingcycleDescAmount is the schema descriptor for amount field.
	billingcycleDescAmount := billingcycleFields[6].Descriptor()
	// billingcycle.DefaultAmount holds the default value on creation for the amount field.
	billingcycle.DefaultAmount = billingcycleDescAmount.Default.(decimal.Decimal)
	// billingcycleDescCycleStatus is the schema descriptor for cycle_status field.
	billingcycleDescCycleStatus := billingcycleFields[7].Descriptor()
	// billingcycle.DefaultCycleStatus holds the default value on creation for the cycle_status field.
	billingcycle.DefaultCycleStatus = billingcycleDescCycleStatus.Default.(string)
	customerMixin := schema.Customer{}.Mixin()
	customerMixinFields0 := customerMixin[0].Fields()
	_ = customerMixinFields0
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescTenantID is the schema descriptor for tenant_id field.
	customerDescTenantID := customerMixinFields0[0].Descriptor()
	// customer.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	customer.TenantIDValidator = customerDescTenantID.Validators[0].(func(string) error)
	// customerDescStatus is the schema descriptor for status field.
	customerDescStatus := customerMixinFields0[1].Descriptor()
	// customer.DefaultStatus holds the default value on creation for the status field.
	customer.DefaultStatus = customerDescStatus.Default.(string)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerMixinFields0[2].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerMixinFields0[3].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[2].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	domaineventFields := schema.DomainEvent{}.Fields()
	_ = domaineventFields
	// domaineventDescTenantID is the schema descriptor for tenant_id field.
	domaineventDescTenantID := domaineventFields[1].Descriptor()
	// domainevent.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	domainevent.TenantIDValidator = domaineventDescTenantID.Validators[0].(func(string) error)
	// domaineventDescEntityType is the schema descriptor for entity_type field.
	domaineventDescEntityType := domaineventFields[2].Descriptor()
	// domainevent.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	domainevent.EntityTypeValidator = domaineventDescEntityType.Validators[0].(func(string) error)
	// domaineventDescEntityID is the schema descriptor for entity_id field.
	domaineventDescEntityID := domaineventFields[3].Descriptor()
	// domainevent.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	domainevent.EntityIDValidator = domaineventDescEntityID.Validators[0].(func(string) error)
	// domaineventDescEventType is the schema descriptor for event_type field.
	domaineventDescEventType := domaineventFields[4].Descriptor()
	// domainevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	domainevent.EventTypeValidator = domaineventDescEventType.Validators[0].(func(string) error)
	// domaineventDescCreatedAt is the schema descriptor for created_at field.
	domaineventDescCreatedAt := domaineventFields[7].Descriptor()
	// domainevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	domainevent.DefaultCreatedAt = domaineventDescCreatedAt.Default.(func() time.Time)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescTenantID is the schema descriptor for tenant_id field.
	invoiceDescTenantID := invoiceMixinFields0[0].Descriptor()
	// invoice.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	invoice.TenantIDValidator = invoiceDescTenantID.Validators[0].(func(string) error)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceMixinFields0[1].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields0[2].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields0[3].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescCustomerID is the schema descriptor for customer_id field.
	invoiceDescCustomerID := invoiceFields[1].Descriptor()
	// invoice.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	invoice.CustomerIDValidator = invoiceDescCustomerID.Validators[0].(func(string) error)
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[4].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescInvoiceStatus is the schema descriptor for invoice_status field.
	invoiceDescInvoiceStatus := invoiceFields[7].Descriptor()
	// invoice.DefaultInvoiceStatus holds the default value on creation for the invoice_status field.
	invoice.DefaultInvoiceStatus = invoiceDescInvoiceStatus.Default.(string)
	// invoiceDescTotal is the schema descriptor for total field.
	invoiceDescTotal := invoiceFields[8].Descriptor()
	// invoice.DefaultTotal holds the default value on creation for the total field.
	invoice.DefaultTotal = invoiceDescTotal.Default.(decimal.Decimal)
	// invoiceDescIsLateIssued is the schema descriptor for is_late_issued field.
	invoiceDescIsLateIssued := invoiceFields[9].Descriptor()
	// invoice.DefaultIsLateIssued holds the default value on creation for the is_late_issued field.
	invoice.DefaultIsLateIssued = invoiceDescIsLateIssued.Default.(bool)
	invoicelineitemMixin := schema.InvoiceLineItem{}.Mixin()
	invoicelineitemMixinFields0 := invoicelineitemMixin[0].Fields()
	_ = invoicelineitemMixinFields0
	invoicelineitemFields := schema.InvoiceLineItem{}.Fields()
	_ = invoicelineitemFields
	// invoicelineitemDescTenantID is the schema descriptor for tenant_id field.
	invoicelineitemDescTenantID := invoicelineitemMixinFields0[0].Descriptor()
	// invoicelineitem.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	invoicelineitem.TenantIDValidator = invoicelineitemDescTenantID.Validators[0].(func(string) error)
	// invoicelineitemDescStatus is the schema descriptor for status field.
	invoicelineitemDescStatus := invoicelineitemMixinFields0[1].Descriptor()
	// invoicelineitem.DefaultStatus holds the default value on creation for the status field.
	invoicelineitem.DefaultStatus = invoicelineitemDescStatus.Default.(string)
	// invoicelineitemDescCreatedAt is the schema descriptor for created_at field.
	invoicelineitemDescCreatedAt := invoicelineitemMixinFields0[2].Descriptor()
	// invoicelineitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoicelineitem.DefaultCreatedAt = invoicelineitemDescCreatedAt.Default.(func() time.Time)
	// invoicelineitemDescUpdatedAt is the schema descriptor for updated_at field.
	invoicelineitemDescUpdatedAt := invoicelineitemMixinFields0[3].Descriptor()
	// invoicelineitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoicelineitem.DefaultUpdatedAt = invoicelineitemDescUpdatedAt.Default.(func() time.Time)
	// invoicelineitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoicelineitem.UpdateDefaultUpdatedAt = invoicelineitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoicelineitemDescInvoiceID is the schema descriptor for invoice_id field.
	invoicelineitemDescInvoiceID := invoicelineitemFields[1].Descriptor()
	// invoicelineitem.InvoiceIDValidator is a validator for the "invoice_id" field. It is called by the builders before save.
	invoicelineitem.InvoiceIDValidator = invoicelineitemDescInvoiceID.Validators[0].(func(string) error)
	// invoicelineitemDescAmount is the schema descriptor for amount field.
	invoicelineitemDescAmount := invoicelineitemFields[4].Descriptor()
	// invoicelineitem.DefaultAmount holds the default value on creation for the amount field.
	invoicelineitem.DefaultAmount = invoicelineitemDescAmount.Default.(decimal.Decimal)
	// invoicelineitemDescQuantity is the schema descriptor for quantity field.
	invoicelineitemDescQuantity := invoicelineitemFields[5].Descriptor()
	// invoicelineitem.DefaultQuantity holds the default value on creation for the quantity field.
	invoicelineitem.DefaultQuantity = invoicelineitemDescQuantity.Default.(decimal.Decimal)
	invoicesequenceFields := schema.InvoiceSequence{}.Fields()
	_ = invoicesequenceFields
	// invoicesequenceDescTenantID is the schema descriptor for tenant_id field.
	invoicesequenceDescTenantID := invoicesequenceFields[0].Descriptor()
	// invoicesequence.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	invoicesequence.TenantIDValidator = invoicesequenceDescTenantID.Validators[0].(func(string) error)
	// invoicesequenceDescYearMonth is the schema descriptor for year_month field.
	invoicesequenceDescYearMonth := invoicesequenceFields[1].Descriptor()
	// invoicesequence.YearMonthValidator is a validator for the "year_month" field. It is called by the builders before save.
	invoicesequence.YearMonthValidator = invoicesequenceDescYearMonth.Validators[0].(func(string) error)
	// invoicesequenceDescLastValue is the schema descriptor for last_value field.
	invoicesequenceDescLastValue := invoicesequenceFields[2].Descriptor()
	// invoicesequence.DefaultLastValue holds the default value on creation for the last_value field.
	invoicesequence.DefaultLastValue = invoicesequenceDescLastValue.Default.(int64)
	// invoicesequenceDescCreatedAt is the schema descriptor for created_at field.
	invoicesequenceDescCreatedAt := invoicesequenceFields[3].Descriptor()
	// invoicesequence.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoicesequence.DefaultCreatedAt = invoicesequenceDescCreatedAt.Default.(func() time.Time)
	// invoicesequenceDescUpdatedAt is the schema descriptor for updated_at field.
	invoicesequenceDescUpdatedAt := invoicesequenceFields[4].Descriptor()
	// invoicesequence.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoicesequence.DefaultUpdatedAt = invoicesequenceDescUpdatedAt.Default.(func() time.Time)
	// invoicesequence.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoicesequence.UpdateDefaultUpdatedAt = invoicesequenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	serviceMixin := schema.Service{}.Mixin()
	serviceMixinFields0 := serviceMixin[0].Fields()
	_ = serviceMixinFields0
	serviceFields := schema.Service{}.Fields()
	_ = serviceFields
	// serviceDescTenantID is the schema descriptor for tenant_id field.
	serviceDescTenantID := serviceMixinFields0[0].Descriptor()
	// service.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	service.TenantIDValidator = serviceDescTenantID.Validators[0].(func(string) error)
	// serviceDescStatus is the schema descriptor for status field.
	serviceDescStatus := serviceMixinFields0[1].Descriptor()
	// service.DefaultStatus holds the default value on creation for the status field.
	service.DefaultStatus = serviceDescStatus.Default.(string)
	// serviceDescCreatedAt is the schema descriptor for created_at field.
	serviceDescCreatedAt := serviceMixinFields0[2].Descriptor()
	// service.DefaultCreatedAt holds the default value on creation for the created_at field.
	service.DefaultCreatedAt = serviceDescCreatedAt.Default.(func() time.Time)
	// serviceDescUpdatedAt is the schema descriptor for updated_at field.
	serviceDescUpdatedAt := serviceMixinFields0[3].Descriptor()
	// service.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	service.DefaultUpdatedAt = serviceDescUpdatedAt.Default.(func() time.Time)
	// service.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	service.UpdateDefaultUpdatedAt = serviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceDescCustomerID is the schema descriptor for customer_id field.
	serviceDescCustomerID := serviceFields[1].Descriptor()
	// service.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	service.CustomerIDValidator = serviceDescCustomerID.Validators[0].(func(string) error)
	// serviceDescName is the schema descriptor for name field.
	serviceDescName := serviceFields[2].Descriptor()
	// service.NameValidator is a validator for the "name" field. It is called by the builders before save.
	service.NameValidator = serviceDescName.Validators[0].(func(string) error)
	// serviceDescAmount is the schema descriptor for amount field.
	serviceDescAmount := serviceFields[3].Descriptor()
	// service.DefaultAmount holds the default value on creation for the amount field.
	service.DefaultAmount = serviceDescAmount.Default.(decimal.Decimal)
	// serviceDescBillingType is the schema descriptor for billing_type field.
	serviceDescBillingType := serviceFields[4].Descriptor()
	// service.DefaultBillingType holds the default value on creation for the billing_type field.
	service.DefaultBillingType = serviceDescBillingType.Default.(string)
	// serviceDescServiceStatus is the schema descriptor for service_status field.
	serviceDescServiceStatus := serviceFields[6].Descriptor()
	// service.DefaultServiceStatus holds the default value on creation for the service_status field.
	service.DefaultServiceStatus = serviceDescServiceStatus.Default.(string)
}

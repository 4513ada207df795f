// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BillingCycle is the predicate function for billingcycle builders.
type BillingCycle func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// DomainEvent is the predicate function for domainevent builders.
type DomainEvent func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceLineItem is the predicate function for invoicelineitem builders.
type InvoiceLineItem func(*sql.Selector)

// InvoiceSequence is the predicate function for invoicesequence builders.
type InvoiceSequence func(*sql.Selector)

// Service is the predicate function for service builders.
type Service func(*sql.Selector)

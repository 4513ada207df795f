// Code generated by ent, DO NOT EDIT.

package invoicesequence

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the invoicesequence type in the database.
	Label = "invoice_sequence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldYearMonth holds the string denoting the year_month field in the database.
	FieldYearMonth = "year_month"
	// FieldLastValue holds the string denoting the last_value field in the database.
	FieldLastValue = "last_value"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the invoicesequence in the database.
	Table = "invoice_sequences"
)

// Columns holds all SQL columns for invoicesequence fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldYearMonth,
	FieldLastValue,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// YearMonthValidator is a validator for the "year_month" field. It is called by the builders before save.
	YearMonthValidator func(string) error
	// DefaultLastValue holds the default value on creation for the "last_value" field.
	DefaultLastValue int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the InvoiceSequence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByYearMonth orders the results by the year_month field.
func ByYearMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearMonth, opts...).ToFunc()
}

// ByLastValue orders the results by the last_value field.
func ByLastValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastValue, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

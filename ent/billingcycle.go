// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cadencehq/cadence/ent/billingcycle"
	"github.com/shopspring/decimal"
)

// BillingCycle is the model entity for the BillingCycle schema.
type BillingCycle struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy string `json:"updated_by,omitempty"`
	// ServiceID holds the value of the "service_id" field.
	ServiceID string `json:"service_id,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID string `json:"customer_id,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart time.Time `json:"period_start,omitempty"`
	// PeriodEnd holds the value of the "period_end" field.
	PeriodEnd time.Time `json:"period_end,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate time.Time `json:"due_date,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// CycleStatus holds the value of the "cycle_status" field.
	CycleStatus string `json:"cycle_status,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID    *string `json:"invoice_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillingCycle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billingcycle.FieldAmount:
			values[i] = new(decimal.Decimal)
		case billingcycle.FieldID, billingcycle.FieldTenantID, billingcycle.FieldStatus, billingcycle.FieldCreatedBy, billingcycle.FieldUpdatedBy, billingcycle.FieldServiceID, billingcycle.FieldCustomerID, billingcycle.FieldCycleStatus, billingcycle.FieldInvoiceID:
			values[i] = new(sql.NullString)
		case billingcycle.FieldCreatedAt, billingcycle.FieldUpdatedAt, billingcycle.FieldPeriodStart, billingcycle.FieldPeriodEnd, billingcycle.FieldDueDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillingCycle fields.
func (bc *BillingCycle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billingcycle.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				bc.ID = value.String
			}
		case billingcycle.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				bc.TenantID = value.String
			}
		case billingcycle.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				bc.Status = value.String
			}
		case billingcycle.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				bc.CreatedAt = value.Time
			}
		case billingcycle.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				bc.UpdatedAt = value.Time
			}
		case billingcycle.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				bc.CreatedBy = value.String
			}
		case billingcycle.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				bc.UpdatedBy = value.String
			}
		case billingcycle.FieldServiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value.Valid {
				bc.ServiceID = value.String
			}
		case billingcycle.FieldCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				bc.CustomerID = value.String
			}
		case billingcycle.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				bc.PeriodStart = value.Time
			}
		case billingcycle.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				bc.PeriodEnd = value.Time
			}
		case billingcycle.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				bc.DueDate = value.Time
			}
		case billingcycle.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				bc.Amount = *value
			}
		case billingcycle.FieldCycleStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_status", values[i])
			} else if value.Valid {
				bc.CycleStatus = value.String
			}
		case billingcycle.FieldInvoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value.Valid {
				bc.InvoiceID = new(string)
				*bc.InvoiceID = value.String
			}
		default:
			bc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillingCycle.
// This includes values selected through modifiers, order, etc.
func (bc *BillingCycle) Value(name string) (ent.Value, error) {
	return bc.selectValues.Get(name)
}

// Update returns a builder for updating this BillingCycle.
// Note that you need to call BillingCycle.Unwrap() before calling this method if this BillingCycle
// was returned from a transaction, and the transaction was committed or rolled back.
func (bc *BillingCycle) Update() *BillingCycleUpdateOne {
	return NewBillingCycleClient(bc.config).UpdateOne(bc)
}

// Unwrap unwraps the BillingCycle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (bc *BillingCycle) Unwrap() *BillingCycle {
	_tx, ok := bc.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillingCycle is not a transactional entity")
	}
	bc.config.driver = _tx.drv
	return bc
}

// String implements the fmt.Stringer.
func (bc *BillingCycle) String() string {
	var builder strings.Builder
	builder.WriteString("BillingCycle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", bc.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(bc.TenantID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(bc.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(bc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(bc.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(bc.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(bc.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("service_id=")
	builder.WriteString(bc.ServiceID)
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(bc.CustomerID)
	builder.WriteString(", ")
	builder.WriteString("period_start=")
	builder.WriteString(bc.PeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("period_end=")
	builder.WriteString(bc.PeriodEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("due_date=")
	builder.WriteString(bc.DueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", bc.Amount))
	builder.WriteString(", ")
	builder.WriteString("cycle_status=")
	builder.WriteString(bc.CycleStatus)
	builder.WriteString(", ")
	if v := bc.InvoiceID; v != nil {
		builder.WriteString("invoice_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// BillingCycles is a parsable slice of BillingCycle.
type BillingCycles []*BillingCycle

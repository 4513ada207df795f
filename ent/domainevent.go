// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cadencehq/cadence/ent/domainevent"
)

// DomainEvent is the model entity for the DomainEvent schema.
type DomainEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy string `json:"triggered_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DomainEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case domainevent.FieldPayload:
			values[i] = new([]byte)
		case domainevent.FieldID, domainevent.FieldTenantID, domainevent.FieldEntityType, domainevent.FieldEntityID, domainevent.FieldEventType, domainevent.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case domainevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DomainEvent fields.
func (de *DomainEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case domainevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				de.ID = value.String
			}
		case domainevent.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				de.TenantID = value.String
			}
		case domainevent.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				de.EntityType = value.String
			}
		case domainevent.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				de.EntityID = value.String
			}
		case domainevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				de.EventType = value.String
			}
		case domainevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &de.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case domainevent.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				de.TriggeredBy = value.String
			}
		case domainevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				de.CreatedAt = value.Time
			}
		default:
			de.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DomainEvent.
// This includes values selected through modifiers, order, etc.
func (de *DomainEvent) Value(name string) (ent.Value, error) {
	return de.selectValues.Get(name)
}

// Update returns a builder for updating this DomainEvent.
// Note that you need to call DomainEvent.Unwrap() before calling this method if this DomainEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (de *DomainEvent) Update() *DomainEventUpdateOne {
	return NewDomainEventClient(de.config).UpdateOne(de)
}

// Unwrap unwraps the DomainEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (de *DomainEvent) Unwrap() *DomainEvent {
	_tx, ok := de.config.driver.(*txDriver)
	if !ok {
		panic("ent: DomainEvent is not a transactional entity")
	}
	de.config.driver = _tx.drv
	return de
}

// String implements the fmt.Stringer.
func (de *DomainEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DomainEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", de.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(de.TenantID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(de.EntityType)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(de.EntityID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(de.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", de.Payload))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(de.TriggeredBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(de.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DomainEvents is a parsable slice of DomainEvent.
type DomainEvents []*DomainEvent

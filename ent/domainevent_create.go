// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cadencehq/cadence/ent/domainevent"
)

// DomainEventCreate is the builder for creating a DomainEvent entity.
type DomainEventCreate struct {
	config
	mutation *DomainEventMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (dec *DomainEventCreate) SetTenantID(s string) *DomainEventCreate {
	dec.mutation.SetTenantID(s)
	return dec
}

// SetEntityType sets the "entity_type" field.
func (dec *DomainEventCreate) SetEntityType(s string) *DomainEventCreate {
	dec.mutation.SetEntityType(s)
	return dec
}

// SetEntityID sets the "entity_id" field.
func (dec *DomainEventCreate) SetEntityID(s string) *DomainEventCreate {
	dec.mutation.SetEntityID(s)
	return dec
}

// SetEventType sets the "event_type" field.
func (dec *DomainEventCreate) SetEventType(s string) *DomainEventCreate {
	dec.mutation.SetEventType(s)
	return dec
}

// SetPayload sets the "payload" field.
func (dec *DomainEventCreate) SetPayload(m map[string]interface{}) *DomainEventCreate {
	dec.mutation.SetPayload(m)
	return dec
}

// SetTriggeredBy sets the "triggered_by" field.
func (dec *DomainEventCreate) SetTriggeredBy(s string) *DomainEventCreate {
	dec.mutation.SetTriggeredBy(s)
	return dec
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (dec *DomainEventCreate) SetNillableTriggeredBy(s *string) *DomainEventCreate {
	if s != nil {
		dec.SetTriggeredBy(*s)
	}
	return dec
}

// SetCreatedAt sets the "created_at" field.
func (dec *DomainEventCreate) SetCreatedAt(t time.Time) *DomainEventCreate {
	dec.mutation.SetCreatedAt(t)
	return dec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (dec *DomainEventCreate) SetNillableCreatedAt(t *time.Time) *DomainEventCreate {
	if t != nil {
		dec.SetCreatedAt(*t)
	}
	return dec
}

// SetID sets the "id" field.
func (dec *DomainEventCreate) SetID(s string) *DomainEventCreate {
	dec.mutation.SetID(s)
	return dec
}

// Mutation returns the DomainEventMutation object of the builder.
func (dec *DomainEventCreate) Mutation() *DomainEventMutation {
	return dec.mutation
}

// Save creates the DomainEvent in the database.
func (dec *DomainEventCreate) Save(ctx context.Context) (*DomainEvent, error) {
	dec.defaults()
	return withHooks(ctx, dec.sqlSave, dec.mutation, dec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dec *DomainEventCreate) SaveX(ctx context.Context) *DomainEvent {
	v, err := dec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dec *DomainEventCreate) Exec(ctx context.Context) error {
	_, err := dec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dec *DomainEventCreate) ExecX(ctx context.Context) {
	if err := dec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dec *DomainEventCreate) defaults() {
	if _, ok := dec.mutation.CreatedAt(); !ok {
		v := domainevent.DefaultCreatedAt()
		dec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dec *DomainEventCreate) check() error {
	if _, ok := dec.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DomainEvent.tenant_id"`)}
	}
	if v, ok := dec.mutation.TenantID(); ok {
		if err := domainevent.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.tenant_id": %w`, err)}
		}
	}
	if _, ok := dec.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "DomainEvent.entity_type"`)}
	}
	if v, ok := dec.mutation.EntityType(); ok {
		if err := domainevent.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.entity_type": %w`, err)}
		}
	}
	if _, ok := dec.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "DomainEvent.entity_id"`)}
	}
	if v, ok := dec.mutation.EntityID(); ok {
		if err := domainevent.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.entity_id": %w`, err)}
		}
	}
	if _, ok := dec.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "DomainEvent.event_type"`)}
	}
	if v, ok := dec.mutation.EventType(); ok {
		if err := domainevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.event_type": %w`, err)}
		}
	}
	if _, ok := dec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DomainEvent.created_at"`)}
	}
	return nil
}

func (dec *DomainEventCreate) sqlSave(ctx context.Context) (*DomainEvent, error) {
	if err := dec.check(); err != nil {
		return nil, err
	}
	_node, _spec := dec.createSpec()
	if err := sqlgraph.CreateNode(ctx, dec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DomainEvent.ID type: %T", _spec.ID.Value)
		}
	}
	dec.mutation.id = &_node.ID
	dec.mutation.done = true
	return _node, nil
}

func (dec *DomainEventCreate) createSpec() (*DomainEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DomainEvent{config: dec.config}
		_spec = sqlgraph.NewCreateSpec(domainevent.Table, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	)
	if id, ok := dec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := dec.mutation.TenantID(); ok {
		_spec.SetField(domainevent.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := dec.mutation.EntityType(); ok {
		_spec.SetField(domainevent.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := dec.mutation.EntityID(); ok {
		_spec.SetField(domainevent.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := dec.mutation.EventType(); ok {
		_spec.SetField(domainevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := dec.mutation.Payload(); ok {
		_spec.SetField(domainevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := dec.mutation.TriggeredBy(); ok {
		_spec.SetField(domainevent.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := dec.mutation.CreatedAt(); ok {
		_spec.SetField(domainevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DomainEventCreateBulk is the builder for creating many DomainEvent entities in bulk.
type DomainEventCreateBulk struct {
	config
	err      error
	builders []*DomainEventCreate
}

// Save creates the DomainEvent entities in the database.
func (decb *DomainEventCreateBulk) Save(ctx context.Context) ([]*DomainEvent, error) {
	if decb.err != nil {
		return nil, decb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(decb.builders))
	nodes := make([]*DomainEvent, len(decb.builders))
	mutators := make([]Mutator, len(decb.builders))
	for i := range decb.builders {
		func(i int, root context.Context) {
			builder := decb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, decb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, decb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, decb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (decb *DomainEventCreateBulk) SaveX(ctx context.Context) []*DomainEvent {
	v, err := decb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (decb *DomainEventCreateBulk) Exec(ctx context.Context) error {
	_, err := decb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (decb *DomainEventCreateBulk) ExecX(ctx context.Context) {
	if err := decb.Exec(ctx); err != nil {
		panic(err)
	}
}

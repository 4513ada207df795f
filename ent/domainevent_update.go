// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cadencehq/cadence/ent/domainevent"
	"github.com/cadencehq/cadence/ent/predicate"
)

// DomainEventUpdate is the builder for updating DomainEvent entities.
type DomainEventUpdate struct {
	config
	hooks    []Hook
	mutation *DomainEventMutation
}

// Where appends a list predicates to the DomainEventUpdate builder.
func (deu *DomainEventUpdate) Where(ps ...predicate.DomainEvent) *DomainEventUpdate {
	deu.mutation.Where(ps...)
	return deu
}

// Mutation returns the DomainEventMutation object of the builder.
func (deu *DomainEventUpdate) Mutation() *DomainEventMutation {
	return deu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (deu *DomainEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, deu.sqlSave, deu.mutation, deu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (deu *DomainEventUpdate) SaveX(ctx context.Context) int {
	affected, err := deu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (deu *DomainEventUpdate) Exec(ctx context.Context) error {
	_, err := deu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (deu *DomainEventUpdate) ExecX(ctx context.Context) {
	if err := deu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (deu *DomainEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(domainevent.Table, domainevent.Columns, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	if ps := deu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if deu.mutation.PayloadCleared() {
		_spec.ClearField(domainevent.FieldPayload, field.TypeJSON)
	}
	if deu.mutation.TriggeredByCleared() {
		_spec.ClearField(domainevent.FieldTriggeredBy, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, deu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	deu.mutation.done = true
	return n, nil
}

// DomainEventUpdateOne is the builder for updating a single DomainEvent entity.
type DomainEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainEventMutation
}

// Mutation returns the DomainEventMutation object of the builder.
func (deuo *DomainEventUpdateOne) Mutation() *DomainEventMutation {
	return deuo.mutation
}

// Where appends a list predicates to the DomainEventUpdate builder.
func (deuo *DomainEventUpdateOne) Where(ps ...predicate.DomainEvent) *DomainEventUpdateOne {
	deuo.mutation.Where(ps...)
	return deuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (deuo *DomainEventUpdateOne) Select(field string, fields ...string) *DomainEventUpdateOne {
	deuo.fields = append([]string{field}, fields...)
	return deuo
}

// Save executes the query and returns the updated DomainEvent entity.
func (deuo *DomainEventUpdateOne) Save(ctx context.Context) (*DomainEvent, error) {
	return withHooks(ctx, deuo.sqlSave, deuo.mutation, deuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (deuo *DomainEventUpdateOne) SaveX(ctx context.Context) *DomainEvent {
	node, err := deuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (deuo *DomainEventUpdateOne) Exec(ctx context.Context) error {
	_, err := deuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (deuo *DomainEventUpdateOne) ExecX(ctx context.Context) {
	if err := deuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (deuo *DomainEventUpdateOne) sqlSave(ctx context.Context) (_node *DomainEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(domainevent.Table, domainevent.Columns, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	id, ok := deuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := deuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainevent.FieldID)
		for _, f := range fields {
			if !domainevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domainevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := deuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if deuo.mutation.PayloadCleared() {
		_spec.ClearField(domainevent.FieldPayload, field.TypeJSON)
	}
	if deuo.mutation.TriggeredByCleared() {
		_spec.ClearField(domainevent.FieldTriggeredBy, field.TypeString)
	}
	_node = &DomainEvent{config: deuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, deuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	deuo.mutation.done = true
	return _node, nil
}

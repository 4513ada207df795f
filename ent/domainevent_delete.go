// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cadencehq/cadence/ent/domainevent"
	"github.com/cadencehq/cadence/ent/predicate"
)

// DomainEventDelete is the builder for deleting a DomainEvent entity.
type DomainEventDelete struct {
	config
	hooks    []Hook
	mutation *DomainEventMutation
}

// Where appends a list predicates to the DomainEventDelete builder.
func (ded *DomainEventDelete) Where(ps ...predicate.DomainEvent) *DomainEventDelete {
	ded.mutation.Where(ps...)
	return ded
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ded *DomainEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ded.sqlExec, ded.mutation, ded.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ded *DomainEventDelete) ExecX(ctx context.Context) int {
	n, err := ded.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ded *DomainEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(domainevent.Table, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	if ps := ded.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ded.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ded.mutation.done = true
	return affected, err
}

// DomainEventDeleteOne is the builder for deleting a single DomainEvent entity.
type DomainEventDeleteOne struct {
	ded *DomainEventDelete
}

// Where appends a list predicates to the DomainEventDelete builder.
func (dedo *DomainEventDeleteOne) Where(ps ...predicate.DomainEvent) *DomainEventDeleteOne {
	dedo.ded.mutation.Where(ps...)
	return dedo
}

// Exec executes the deletion query.
func (dedo *DomainEventDeleteOne) Exec(ctx context.Context) error {
	n, err := dedo.ded.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{domainevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dedo *DomainEventDeleteOne) ExecX(ctx context.Context) {
	if err := dedo.Exec(ctx); err != nil {
		panic(err)
	}
}

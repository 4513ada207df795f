// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cadencehq/cadence/ent/billingcycle"
	"github.com/cadencehq/cadence/ent/predicate"
)

// BillingCycleUpdate is the builder for updating BillingCycle entities.
type BillingCycleUpdate struct {
	config
	hooks    []Hook
	mutation *BillingCycleMutation
}

// Where appends a list predicates to the BillingCycleUpdate builder.
func (bcu *BillingCycleUpdate) Where(ps ...predicate.BillingCycle) *BillingCycleUpdate {
	bcu.mutation.Where(ps...)
	return bcu
}

// SetStatus sets the "status" field.
func (bcu *BillingCycleUpdate) SetStatus(s string) *BillingCycleUpdate {
	bcu.mutation.SetStatus(s)
	return bcu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bcu *BillingCycleUpdate) SetNillableStatus(s *string) *BillingCycleUpdate {
	if s != nil {
		bcu.SetStatus(*s)
	}
	return bcu
}

// SetUpdatedAt sets the "updated_at" field.
func (bcu *BillingCycleUpdate) SetUpdatedAt(t time.Time) *BillingCycleUpdate {
	bcu.mutation.SetUpdatedAt(t)
	return bcu
}

// SetUpdatedBy sets the "updated_by" field.
func (bcu *BillingCycleUpdate) SetUpdatedBy(s string) *BillingCycleUpdate {
	bcu.mutation.SetUpdatedBy(s)
	return bcu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (bcu *BillingCycleUpdate) SetNillableUpdatedBy(s *string) *BillingCycleUpdate {
	if s != nil {
		bcu.SetUpdatedBy(*s)
	}
	return bcu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (bcu *BillingCycleUpdate) ClearUpdatedBy() *BillingCycleUpdate {
	bcu.mutation.ClearUpdatedBy()
	return bcu
}

// SetDueDate sets the "due_date" field.
func (bcu *BillingCycleUpdate) SetDueDate(t time.Time) *BillingCycleUpdate {
	bcu.mutation.SetDueDate(t)
	return bcu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (bcu *BillingCycleUpdate) SetNillableDueDate(t *time.Time) *BillingCycleUpdate {
	if t != nil {
		bcu.SetDueDate(*t)
	}
	return bcu
}

// SetCycleStatus sets the "cycle_status" field.
func (bcu *BillingCycleUpdate) SetCycleStatus(s string) *BillingCycleUpdate {
	bcu.mutation.SetCycleStatus(s)
	return bcu
}

// SetNillableCycleStatus sets the "cycle_status" field if the given value is not nil.
func (bcu *BillingCycleUpdate) SetNillableCycleStatus(s *string) *BillingCycleUpdate {
	if s != nil {
		bcu.SetCycleStatus(*s)
	}
	return bcu
}

// SetInvoiceID sets the "invoice_id" field.
func (bcu *BillingCycleUpdate) SetInvoiceID(s string) *BillingCycleUpdate {
	bcu.mutation.SetInvoiceID(s)
	return bcu
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (bcu *BillingCycleUpdate) SetNillableInvoiceID(s *string) *BillingCycleUpdate {
	if s != nil {
		bcu.SetInvoiceID(*s)
	}
	return bcu
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (bcu *BillingCycleUpdate) ClearInvoiceID() *BillingCycleUpdate {
	bcu.mutation.ClearInvoiceID()
	return bcu
}

// Mutation returns the BillingCycleMutation object of the builder.
func (bcu *BillingCycleUpdate) Mutation() *BillingCycleMutation {
	return bcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bcu *BillingCycleUpdate) Save(ctx context.Context) (int, error) {
	bcu.defaults()
	return withHooks(ctx, bcu.sqlSave, bcu.mutation, bcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bcu *BillingCycleUpdate) SaveX(ctx context.Context) int {
	affected, err := bcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bcu *BillingCycleUpdate) Exec(ctx context.Context) error {
	_, err := bcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcu *BillingCycleUpdate) ExecX(ctx context.Context) {
	if err := bcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bcu *BillingCycleUpdate) defaults() {
	if _, ok := bcu.mutation.UpdatedAt(); !ok {
		v := billingcycle.UpdateDefaultUpdatedAt()
		bcu.mutation.SetUpdatedAt(v)
	}
}

func (bcu *BillingCycleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(billingcycle.Table, billingcycle.Columns, sqlgraph.NewFieldSpec(billingcycle.FieldID, field.TypeString))
	if ps := bcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bcu.mutation.Status(); ok {
		_spec.SetField(billingcycle.FieldStatus, field.TypeString, value)
	}
	if value, ok := bcu.mutation.UpdatedAt(); ok {
		_spec.SetField(billingcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if bcu.mutation.CreatedByCleared() {
		_spec.ClearField(billingcycle.FieldCreatedBy, field.TypeString)
	}
	if value, ok := bcu.mutation.UpdatedBy(); ok {
		_spec.SetField(billingcycle.FieldUpdatedBy, field.TypeString, value)
	}
	if bcu.mutation.UpdatedByCleared() {
		_spec.ClearField(billingcycle.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := bcu.mutation.DueDate(); ok {
		_spec.SetField(billingcycle.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := bcu.mutation.CycleStatus(); ok {
		_spec.SetField(billingcycle.FieldCycleStatus, field.TypeString, value)
	}
	if value, ok := bcu.mutation.InvoiceID(); ok {
		_spec.SetField(billingcycle.FieldInvoiceID, field.TypeString, value)
	}
	if bcu.mutation.InvoiceIDCleared() {
		_spec.ClearField(billingcycle.FieldInvoiceID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, bcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bcu.mutation.done = true
	return n, nil
}

// BillingCycleUpdateOne is the builder for updating a single BillingCycle entity.
type BillingCycleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingCycleMutation
}

// SetStatus sets the "status" field.
func (bcuo *BillingCycleUpdateOne) SetStatus(s string) *BillingCycleUpdateOne {
	bcuo.mutation.SetStatus(s)
	return bcuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bcuo *BillingCycleUpdateOne) SetNillableStatus(s *string) *BillingCycleUpdateOne {
	if s != nil {
		bcuo.SetStatus(*s)
	}
	return bcuo
}

// SetUpdatedAt sets the "updated_at" field.
func (bcuo *BillingCycleUpdateOne) SetUpdatedAt(t time.Time) *BillingCycleUpdateOne {
	bcuo.mutation.SetUpdatedAt(t)
	return bcuo
}

// SetUpdatedBy sets the "updated_by" field.
func (bcuo *BillingCycleUpdateOne) SetUpdatedBy(s string) *BillingCycleUpdateOne {
	bcuo.mutation.SetUpdatedBy(s)
	return bcuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (bcuo *BillingCycleUpdateOne) SetNillableUpdatedBy(s *string) *BillingCycleUpdateOne {
	if s != nil {
		bcuo.SetUpdatedBy(*s)
	}
	return bcuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (bcuo *BillingCycleUpdateOne) ClearUpdatedBy() *BillingCycleUpdateOne {
	bcuo.mutation.ClearUpdatedBy()
	return bcuo
}

// SetDueDate sets the "due_date" field.
func (bcuo *BillingCycleUpdateOne) SetDueDate(t time.Time) *BillingCycleUpdateOne {
	bcuo.mutation.SetDueDate(t)
	return bcuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (bcuo *BillingCycleUpdateOne) SetNillableDueDate(t *time.Time) *BillingCycleUpdateOne {
	if t != nil {
		bcuo.SetDueDate(*t)
	}
	return bcuo
}

// SetCycleStatus sets the "cycle_status" field.
func (bcuo *BillingCycleUpdateOne) SetCycleStatus(s string) *BillingCycleUpdateOne {
	bcuo.mutation.SetCycleStatus(s)
	return bcuo
}

// SetNillableCycleStatus sets the "cycle_status" field if the given value is not nil.
func (bcuo *BillingCycleUpdateOne) SetNillableCycleStatus(s *string) *BillingCycleUpdateOne {
	if s != nil {
		bcuo.SetCycleStatus(*s)
	}
	return bcuo
}

// SetInvoiceID sets the "invoice_id" field.
func (bcuo *BillingCycleUpdateOne) SetInvoiceID(s string) *BillingCycleUpdateOne {
	bcuo.mutation.SetInvoiceID(s)
	return bcuo
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (bcuo *BillingCycleUpdateOne) SetNillableInvoiceID(s *string) *BillingCycleUpdateOne {
	if s != nil {
		bcuo.SetInvoiceID(*s)
	}
	return bcuo
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (bcuo *BillingCycleUpdateOne) ClearInvoiceID() *BillingCycleUpdateOne {
	bcuo.mutation.ClearInvoiceID()
	return bcuo
}

// Mutation returns the BillingCycleMutation object of the builder.
func (bcuo *BillingCycleUpdateOne) Mutation() *BillingCycleMutation {
	return bcuo.mutation
}

// Where appends a list predicates to the BillingCycleUpdate builder.
func (bcuo *BillingCycleUpdateOne) Where(ps ...predicate.BillingCycle) *BillingCycleUpdateOne {
	bcuo.mutation.Where(ps...)
	return bcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bcuo *BillingCycleUpdateOne) Select(field string, fields ...string) *BillingCycleUpdateOne {
	bcuo.fields = append([]string{field}, fields...)
	return bcuo
}

// Save executes the query and returns the updated BillingCycle entity.
func (bcuo *BillingCycleUpdateOne) Save(ctx context.Context) (*BillingCycle, error) {
	bcuo.defaults()
	return withHooks(ctx, bcuo.sqlSave, bcuo.mutation, bcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bcuo *BillingCycleUpdateOne) SaveX(ctx context.Context) *BillingCycle {
	node, err := bcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bcuo *BillingCycleUpdateOne) Exec(ctx context.Context) error {
	_, err := bcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcuo *BillingCycleUpdateOne) ExecX(ctx context.Context) {
	if err := bcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bcuo *BillingCycleUpdateOne) defaults() {
	if _, ok := bcuo.mutation.UpdatedAt(); !ok {
		v := billingcycle.UpdateDefaultUpdatedAt()
		bcuo.mutation.SetUpdatedAt(v)
	}
}

func (bcuo *BillingCycleUpdateOne) sqlSave(ctx context.Context) (_node *BillingCycle, err error) {
	_spec := sqlgraph.NewUpdateSpec(billingcycle.Table, billingcycle.Columns, sqlgraph.NewFieldSpec(billingcycle.FieldID, field.TypeString))
	id, ok := bcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillingCycle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingcycle.FieldID)
		for _, f := range fields {
			if !billingcycle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billingcycle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bcuo.mutation.Status(); ok {
		_spec.SetField(billingcycle.FieldStatus, field.TypeString, value)
	}
	if value, ok := bcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(billingcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if bcuo.mutation.CreatedByCleared() {
		_spec.ClearField(billingcycle.FieldCreatedBy, field.TypeString)
	}
	if value, ok := bcuo.mutation.UpdatedBy(); ok {
		_spec.SetField(billingcycle.FieldUpdatedBy, field.TypeString, value)
	}
	if bcuo.mutation.UpdatedByCleared() {
		_spec.ClearField(billingcycle.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := bcuo.mutation.DueDate(); ok {
		_spec.SetField(billingcycle.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := bcuo.mutation.CycleStatus(); ok {
		_spec.SetField(billingcycle.FieldCycleStatus, field.TypeString, value)
	}
	if value, ok := bcuo.mutation.InvoiceID(); ok {
		_spec.SetField(billingcycle.FieldInvoiceID, field.TypeString, value)
	}
	if bcuo.mutation.InvoiceIDCleared() {
		_spec.ClearField(billingcycle.FieldInvoiceID, field.TypeString)
	}
	_node = &BillingCycle{config: bcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bcuo.mutation.done = true
	return _node, nil
}

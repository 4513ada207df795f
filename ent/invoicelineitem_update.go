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
	"github.com/cadencehq/cadence/ent/invoicelineitem"
	"github.com/cadencehq/cadence/ent/predicate"
	"github.com/shopspring/decimal"
)

// InvoiceLineItemUpdate is the builder for updating InvoiceLineItem entities.
type InvoiceLineItemUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceLineItemMutation
}

// Where appends a list predicates to the InvoiceLineItemUpdate builder.
func (iliu *InvoiceLineItemUpdate) Where(ps ...predicate.InvoiceLineItem) *InvoiceLineItemUpdate {
	iliu.mutation.Where(ps...)
	return iliu
}

// SetStatus sets the "status" field.
func (iliu *InvoiceLineItemUpdate) SetStatus(s string) *InvoiceLineItemUpdate {
	iliu.mutation.SetStatus(s)
	return iliu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableStatus(s *string) *InvoiceLineItemUpdate {
	if s != nil {
		iliu.SetStatus(*s)
	}
	return iliu
}

// SetUpdatedAt sets the "updated_at" field.
func (iliu *InvoiceLineItemUpdate) SetUpdatedAt(t time.Time) *InvoiceLineItemUpdate {
	iliu.mutation.SetUpdatedAt(t)
	return iliu
}

// SetUpdatedBy sets the "updated_by" field.
func (iliu *InvoiceLineItemUpdate) SetUpdatedBy(s string) *InvoiceLineItemUpdate {
	iliu.mutation.SetUpdatedBy(s)
	return iliu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableUpdatedBy(s *string) *InvoiceLineItemUpdate {
	if s != nil {
		iliu.SetUpdatedBy(*s)
	}
	return iliu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iliu *InvoiceLineItemUpdate) ClearUpdatedBy() *InvoiceLineItemUpdate {
	iliu.mutation.ClearUpdatedBy()
	return iliu
}

// SetDescription sets the "description" field.
func (iliu *InvoiceLineItemUpdate) SetDescription(s string) *InvoiceLineItemUpdate {
	iliu.mutation.SetDescription(s)
	return iliu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableDescription(s *string) *InvoiceLineItemUpdate {
	if s != nil {
		iliu.SetDescription(*s)
	}
	return iliu
}

// ClearDescription clears the value of the "description" field.
func (iliu *InvoiceLineItemUpdate) ClearDescription() *InvoiceLineItemUpdate {
	iliu.mutation.ClearDescription()
	return iliu
}

// SetAmount sets the "amount" field.
func (iliu *InvoiceLineItemUpdate) SetAmount(d decimal.Decimal) *InvoiceLineItemUpdate {
	iliu.mutation.SetAmount(d)
	return iliu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableAmount(d *decimal.Decimal) *InvoiceLineItemUpdate {
	if d != nil {
		iliu.SetAmount(*d)
	}
	return iliu
}

// SetQuantity sets the "quantity" field.
func (iliu *InvoiceLineItemUpdate) SetQuantity(d decimal.Decimal) *InvoiceLineItemUpdate {
	iliu.mutation.SetQuantity(d)
	return iliu
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableQuantity(d *decimal.Decimal) *InvoiceLineItemUpdate {
	if d != nil {
		iliu.SetQuantity(*d)
	}
	return iliu
}

// SetPeriodStart sets the "period_start" field.
func (iliu *InvoiceLineItemUpdate) SetPeriodStart(t time.Time) *InvoiceLineItemUpdate {
	iliu.mutation.SetPeriodStart(t)
	return iliu
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillablePeriodStart(t *time.Time) *InvoiceLineItemUpdate {
	if t != nil {
		iliu.SetPeriodStart(*t)
	}
	return iliu
}

// ClearPeriodStart clears the value of the "period_start" field.
func (iliu *InvoiceLineItemUpdate) ClearPeriodStart() *InvoiceLineItemUpdate {
	iliu.mutation.ClearPeriodStart()
	return iliu
}

// SetPeriodEnd sets the "period_end" field.
func (iliu *InvoiceLineItemUpdate) SetPeriodEnd(t time.Time) *InvoiceLineItemUpdate {
	iliu.mutation.SetPeriodEnd(t)
	return iliu
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillablePeriodEnd(t *time.Time) *InvoiceLineItemUpdate {
	if t != nil {
		iliu.SetPeriodEnd(*t)
	}
	return iliu
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (iliu *InvoiceLineItemUpdate) ClearPeriodEnd() *InvoiceLineItemUpdate {
	iliu.mutation.ClearPeriodEnd()
	return iliu
}

// Mutation returns the InvoiceLineItemMutation object of the builder.
func (iliu *InvoiceLineItemUpdate) Mutation() *InvoiceLineItemMutation {
	return iliu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iliu *InvoiceLineItemUpdate) Save(ctx context.Context) (int, error) {
	iliu.defaults()
	return withHooks(ctx, iliu.sqlSave, iliu.mutation, iliu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iliu *InvoiceLineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iliu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iliu *InvoiceLineItemUpdate) Exec(ctx context.Context) error {
	_, err := iliu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iliu *InvoiceLineItemUpdate) ExecX(ctx context.Context) {
	if err := iliu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iliu *InvoiceLineItemUpdate) defaults() {
	if _, ok := iliu.mutation.UpdatedAt(); !ok {
		v := invoicelineitem.UpdateDefaultUpdatedAt()
		iliu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iliu *InvoiceLineItemUpdate) check() error {
	if iliu.mutation.InvoiceCleared() && len(iliu.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLineItem.invoice"`)
	}
	return nil
}

func (iliu *InvoiceLineItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iliu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicelineitem.Table, invoicelineitem.Columns, sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeString))
	if ps := iliu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iliu.mutation.Status(); ok {
		_spec.SetField(invoicelineitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := iliu.mutation.UpdatedAt(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if iliu.mutation.CreatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iliu.mutation.UpdatedBy(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedBy, field.TypeString, value)
	}
	if iliu.mutation.UpdatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldUpdatedBy, field.TypeString)
	}
	if iliu.mutation.ServiceIDCleared() {
		_spec.ClearField(invoicelineitem.FieldServiceID, field.TypeString)
	}
	if value, ok := iliu.mutation.Description(); ok {
		_spec.SetField(invoicelineitem.FieldDescription, field.TypeString, value)
	}
	if iliu.mutation.DescriptionCleared() {
		_spec.ClearField(invoicelineitem.FieldDescription, field.TypeString)
	}
	if value, ok := iliu.mutation.Amount(); ok {
		_spec.SetField(invoicelineitem.FieldAmount, field.TypeOther, value)
	}
	if value, ok := iliu.mutation.Quantity(); ok {
		_spec.SetField(invoicelineitem.FieldQuantity, field.TypeOther, value)
	}
	if value, ok := iliu.mutation.PeriodStart(); ok {
		_spec.SetField(invoicelineitem.FieldPeriodStart, field.TypeTime, value)
	}
	if iliu.mutation.PeriodStartCleared() {
		_spec.ClearField(invoicelineitem.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := iliu.mutation.PeriodEnd(); ok {
		_spec.SetField(invoicelineitem.FieldPeriodEnd, field.TypeTime, value)
	}
	if iliu.mutation.PeriodEndCleared() {
		_spec.ClearField(invoicelineitem.FieldPeriodEnd, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iliu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iliu.mutation.done = true
	return n, nil
}

// InvoiceLineItemUpdateOne is the builder for updating a single InvoiceLineItem entity.
type InvoiceLineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceLineItemMutation
}

// SetStatus sets the "status" field.
func (iliuo *InvoiceLineItemUpdateOne) SetStatus(s string) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetStatus(s)
	return iliuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableStatus(s *string) *InvoiceLineItemUpdateOne {
	if s != nil {
		iliuo.SetStatus(*s)
	}
	return iliuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iliuo *InvoiceLineItemUpdateOne) SetUpdatedAt(t time.Time) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetUpdatedAt(t)
	return iliuo
}

// SetUpdatedBy sets the "updated_by" field.
func (iliuo *InvoiceLineItemUpdateOne) SetUpdatedBy(s string) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetUpdatedBy(s)
	return iliuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableUpdatedBy(s *string) *InvoiceLineItemUpdateOne {
	if s != nil {
		iliuo.SetUpdatedBy(*s)
	}
	return iliuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iliuo *InvoiceLineItemUpdateOne) ClearUpdatedBy() *InvoiceLineItemUpdateOne {
	iliuo.mutation.ClearUpdatedBy()
	return iliuo
}

// SetDescription sets the "description" field.
func (iliuo *InvoiceLineItemUpdateOne) SetDescription(s string) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetDescription(s)
	return iliuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableDescription(s *string) *InvoiceLineItemUpdateOne {
	if s != nil {
		iliuo.SetDescription(*s)
	}
	return iliuo
}

// ClearDescription clears the value of the "description" field.
func (iliuo *InvoiceLineItemUpdateOne) ClearDescription() *InvoiceLineItemUpdateOne {
	iliuo.mutation.ClearDescription()
	return iliuo
}

// SetAmount sets the "amount" field.
func (iliuo *InvoiceLineItemUpdateOne) SetAmount(d decimal.Decimal) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetAmount(d)
	return iliuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableAmount(d *decimal.Decimal) *InvoiceLineItemUpdateOne {
	if d != nil {
		iliuo.SetAmount(*d)
	}
	return iliuo
}

// SetQuantity sets the "quantity" field.
func (iliuo *InvoiceLineItemUpdateOne) SetQuantity(d decimal.Decimal) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetQuantity(d)
	return iliuo
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableQuantity(d *decimal.Decimal) *InvoiceLineItemUpdateOne {
	if d != nil {
		iliuo.SetQuantity(*d)
	}
	return iliuo
}

// SetPeriodStart sets the "period_start" field.
func (iliuo *InvoiceLineItemUpdateOne) SetPeriodStart(t time.Time) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetPeriodStart(t)
	return iliuo
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillablePeriodStart(t *time.Time) *InvoiceLineItemUpdateOne {
	if t != nil {
		iliuo.SetPeriodStart(*t)
	}
	return iliuo
}

// ClearPeriodStart clears the value of the "period_start" field.
func (iliuo *InvoiceLineItemUpdateOne) ClearPeriodStart() *InvoiceLineItemUpdateOne {
	iliuo.mutation.ClearPeriodStart()
	return iliuo
}

// SetPeriodEnd sets the "period_end" field.
func (iliuo *InvoiceLineItemUpdateOne) SetPeriodEnd(t time.Time) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetPeriodEnd(t)
	return iliuo
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillablePeriodEnd(t *time.Time) *InvoiceLineItemUpdateOne {
	if t != nil {
		iliuo.SetPeriodEnd(*t)
	}
	return iliuo
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (iliuo *InvoiceLineItemUpdateOne) ClearPeriodEnd() *InvoiceLineItemUpdateOne {
	iliuo.mutation.ClearPeriodEnd()
	return iliuo
}

// Mutation returns the InvoiceLineItemMutation object of the builder.
func (iliuo *InvoiceLineItemUpdateOne) Mutation() *InvoiceLineItemMutation {
	return iliuo.mutation
}

// Where appends a list predicates to the InvoiceLineItemUpdate builder.
func (iliuo *InvoiceLineItemUpdateOne) Where(ps ...predicate.InvoiceLineItem) *InvoiceLineItemUpdateOne {
	iliuo.mutation.Where(ps...)
	return iliuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iliuo *InvoiceLineItemUpdateOne) Select(field string, fields ...string) *InvoiceLineItemUpdateOne {
	iliuo.fields = append([]string{field}, fields...)
	return iliuo
}

// Save executes the query and returns the updated InvoiceLineItem entity.
func (iliuo *InvoiceLineItemUpdateOne) Save(ctx context.Context) (*InvoiceLineItem, error) {
	iliuo.defaults()
	return withHooks(ctx, iliuo.sqlSave, iliuo.mutation, iliuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iliuo *InvoiceLineItemUpdateOne) SaveX(ctx context.Context) *InvoiceLineItem {
	node, err := iliuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iliuo *InvoiceLineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iliuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iliuo *InvoiceLineItemUpdateOne) ExecX(ctx context.Context) {
	if err := iliuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iliuo *InvoiceLineItemUpdateOne) defaults() {
	if _, ok := iliuo.mutation.UpdatedAt(); !ok {
		v := invoicelineitem.UpdateDefaultUpdatedAt()
		iliuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iliuo *InvoiceLineItemUpdateOne) check() error {
	if iliuo.mutation.InvoiceCleared() && len(iliuo.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLineItem.invoice"`)
	}
	return nil
}

func (iliuo *InvoiceLineItemUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceLineItem, err error) {
	if err := iliuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicelineitem.Table, invoicelineitem.Columns, sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeString))
	id, ok := iliuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceLineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iliuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicelineitem.FieldID)
		for _, f := range fields {
			if !invoicelineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicelineitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iliuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iliuo.mutation.Status(); ok {
		_spec.SetField(invoicelineitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := iliuo.mutation.UpdatedAt(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if iliuo.mutation.CreatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iliuo.mutation.UpdatedBy(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedBy, field.TypeString, value)
	}
	if iliuo.mutation.UpdatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldUpdatedBy, field.TypeString)
	}
	if iliuo.mutation.ServiceIDCleared() {
		_spec.ClearField(invoicelineitem.FieldServiceID, field.TypeString)
	}
	if value, ok := iliuo.mutation.Description(); ok {
		_spec.SetField(invoicelineitem.FieldDescription, field.TypeString, value)
	}
	if iliuo.mutation.DescriptionCleared() {
		_spec.ClearField(invoicelineitem.FieldDescription, field.TypeString)
	}
	if value, ok := iliuo.mutation.Amount(); ok {
		_spec.SetField(invoicelineitem.FieldAmount, field.TypeOther, value)
	}
	if value, ok := iliuo.mutation.Quantity(); ok {
		_spec.SetField(invoicelineitem.FieldQuantity, field.TypeOther, value)
	}
	if value, ok := iliuo.mutation.PeriodStart(); ok {
		_spec.SetField(invoicelineitem.FieldPeriodStart, field.TypeTime, value)
	}
	if iliuo.mutation.PeriodStartCleared() {
		_spec.ClearField(invoicelineitem.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := iliuo.mutation.PeriodEnd(); ok {
		_spec.SetField(invoicelineitem.FieldPeriodEnd, field.TypeTime, value)
	}
	if iliuo.mutation.PeriodEndCleared() {
		_spec.ClearField(invoicelineitem.FieldPeriodEnd, field.TypeTime)
	}
	_node = &InvoiceLineItem{config: iliuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iliuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iliuo.mutation.done = true
	return _node, nil
}

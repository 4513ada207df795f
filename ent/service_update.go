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
	"github.com/cadencehq/cadence/ent/predicate"
	"github.com/cadencehq/cadence/ent/service"
	"github.com/shopspring/decimal"
)

// ServiceUpdate is the builder for updating Service entities.
type ServiceUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceMutation
}

// Where appends a list predicates to the ServiceUpdate builder.
func (su *ServiceUpdate) Where(ps ...predicate.Service) *ServiceUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetStatus sets the "status" field.
func (su *ServiceUpdate) SetStatus(s string) *ServiceUpdate {
	su.mutation.SetStatus(s)
	return su
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableStatus(s *string) *ServiceUpdate {
	if s != nil {
		su.SetStatus(*s)
	}
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *ServiceUpdate) SetUpdatedAt(t time.Time) *ServiceUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// SetUpdatedBy sets the "updated_by" field.
func (su *ServiceUpdate) SetUpdatedBy(s string) *ServiceUpdate {
	su.mutation.SetUpdatedBy(s)
	return su
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableUpdatedBy(s *string) *ServiceUpdate {
	if s != nil {
		su.SetUpdatedBy(*s)
	}
	return su
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (su *ServiceUpdate) ClearUpdatedBy() *ServiceUpdate {
	su.mutation.ClearUpdatedBy()
	return su
}

// SetName sets the "name" field.
func (su *ServiceUpdate) SetName(s string) *ServiceUpdate {
	su.mutation.SetName(s)
	return su
}

// SetNillableName sets the "name" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableName(s *string) *ServiceUpdate {
	if s != nil {
		su.SetName(*s)
	}
	return su
}

// SetAmount sets the "amount" field.
func (su *ServiceUpdate) SetAmount(d decimal.Decimal) *ServiceUpdate {
	su.mutation.SetAmount(d)
	return su
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableAmount(d *decimal.Decimal) *ServiceUpdate {
	if d != nil {
		su.SetAmount(*d)
	}
	return su
}

// SetBillingType sets the "billing_type" field.
func (su *ServiceUpdate) SetBillingType(s string) *ServiceUpdate {
	su.mutation.SetBillingType(s)
	return su
}

// SetNillableBillingType sets the "billing_type" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableBillingType(s *string) *ServiceUpdate {
	if s != nil {
		su.SetBillingType(*s)
	}
	return su
}

// SetBillingFrequency sets the "billing_frequency" field.
func (su *ServiceUpdate) SetBillingFrequency(s string) *ServiceUpdate {
	su.mutation.SetBillingFrequency(s)
	return su
}

// SetNillableBillingFrequency sets the "billing_frequency" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableBillingFrequency(s *string) *ServiceUpdate {
	if s != nil {
		su.SetBillingFrequency(*s)
	}
	return su
}

// ClearBillingFrequency clears the value of the "billing_frequency" field.
func (su *ServiceUpdate) ClearBillingFrequency() *ServiceUpdate {
	su.mutation.ClearBillingFrequency()
	return su
}

// SetServiceStatus sets the "service_status" field.
func (su *ServiceUpdate) SetServiceStatus(s string) *ServiceUpdate {
	su.mutation.SetServiceStatus(s)
	return su
}

// SetNillableServiceStatus sets the "service_status" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableServiceStatus(s *string) *ServiceUpdate {
	if s != nil {
		su.SetServiceStatus(*s)
	}
	return su
}

// SetNextBillingDate sets the "next_billing_date" field.
func (su *ServiceUpdate) SetNextBillingDate(t time.Time) *ServiceUpdate {
	su.mutation.SetNextBillingDate(t)
	return su
}

// SetNillableNextBillingDate sets the "next_billing_date" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableNextBillingDate(t *time.Time) *ServiceUpdate {
	if t != nil {
		su.SetNextBillingDate(*t)
	}
	return su
}

// ClearNextBillingDate clears the value of the "next_billing_date" field.
func (su *ServiceUpdate) ClearNextBillingDate() *ServiceUpdate {
	su.mutation.ClearNextBillingDate()
	return su
}

// SetActivatedAt sets the "activated_at" field.
func (su *ServiceUpdate) SetActivatedAt(t time.Time) *ServiceUpdate {
	su.mutation.SetActivatedAt(t)
	return su
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (su *ServiceUpdate) SetNillableActivatedAt(t *time.Time) *ServiceUpdate {
	if t != nil {
		su.SetActivatedAt(*t)
	}
	return su
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (su *ServiceUpdate) ClearActivatedAt() *ServiceUpdate {
	su.mutation.ClearActivatedAt()
	return su
}

// Mutation returns the ServiceMutation object of the builder.
func (su *ServiceUpdate) Mutation() *ServiceMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *ServiceUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *ServiceUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *ServiceUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *ServiceUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *ServiceUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := service.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *ServiceUpdate) check() error {
	if v, ok := su.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Service.name": %w`, err)}
		}
	}
	return nil
}

func (su *ServiceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(service.Table, service.Columns, sqlgraph.NewFieldSpec(service.FieldID, field.TypeString))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Status(); ok {
		_spec.SetField(service.FieldStatus, field.TypeString, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
	}
	if su.mutation.CreatedByCleared() {
		_spec.ClearField(service.FieldCreatedBy, field.TypeString)
	}
	if value, ok := su.mutation.UpdatedBy(); ok {
		_spec.SetField(service.FieldUpdatedBy, field.TypeString, value)
	}
	if su.mutation.UpdatedByCleared() {
		_spec.ClearField(service.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := su.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
	}
	if value, ok := su.mutation.Amount(); ok {
		_spec.SetField(service.FieldAmount, field.TypeOther, value)
	}
	if value, ok := su.mutation.BillingType(); ok {
		_spec.SetField(service.FieldBillingType, field.TypeString, value)
	}
	if value, ok := su.mutation.BillingFrequency(); ok {
		_spec.SetField(service.FieldBillingFrequency, field.TypeString, value)
	}
	if su.mutation.BillingFrequencyCleared() {
		_spec.ClearField(service.FieldBillingFrequency, field.TypeString)
	}
	if value, ok := su.mutation.ServiceStatus(); ok {
		_spec.SetField(service.FieldServiceStatus, field.TypeString, value)
	}
	if value, ok := su.mutation.NextBillingDate(); ok {
		_spec.SetField(service.FieldNextBillingDate, field.TypeTime, value)
	}
	if su.mutation.NextBillingDateCleared() {
		_spec.ClearField(service.FieldNextBillingDate, field.TypeTime)
	}
	if value, ok := su.mutation.ActivatedAt(); ok {
		_spec.SetField(service.FieldActivatedAt, field.TypeTime, value)
	}
	if su.mutation.ActivatedAtCleared() {
		_spec.ClearField(service.FieldActivatedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{service.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// ServiceUpdateOne is the builder for updating a single Service entity.
type ServiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceMutation
}

// SetStatus sets the "status" field.
func (suo *ServiceUpdateOne) SetStatus(s string) *ServiceUpdateOne {
	suo.mutation.SetStatus(s)
	return suo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableStatus(s *string) *ServiceUpdateOne {
	if s != nil {
		suo.SetStatus(*s)
	}
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *ServiceUpdateOne) SetUpdatedAt(t time.Time) *ServiceUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// SetUpdatedBy sets the "updated_by" field.
func (suo *ServiceUpdateOne) SetUpdatedBy(s string) *ServiceUpdateOne {
	suo.mutation.SetUpdatedBy(s)
	return suo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableUpdatedBy(s *string) *ServiceUpdateOne {
	if s != nil {
		suo.SetUpdatedBy(*s)
	}
	return suo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (suo *ServiceUpdateOne) ClearUpdatedBy() *ServiceUpdateOne {
	suo.mutation.ClearUpdatedBy()
	return suo
}

// SetName sets the "name" field.
func (suo *ServiceUpdateOne) SetName(s string) *ServiceUpdateOne {
	suo.mutation.SetName(s)
	return suo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableName(s *string) *ServiceUpdateOne {
	if s != nil {
		suo.SetName(*s)
	}
	return suo
}

// SetAmount sets the "amount" field.
func (suo *ServiceUpdateOne) SetAmount(d decimal.Decimal) *ServiceUpdateOne {
	suo.mutation.SetAmount(d)
	return suo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableAmount(d *decimal.Decimal) *ServiceUpdateOne {
	if d != nil {
		suo.SetAmount(*d)
	}
	return suo
}

// SetBillingType sets the "billing_type" field.
func (suo *ServiceUpdateOne) SetBillingType(s string) *ServiceUpdateOne {
	suo.mutation.SetBillingType(s)
	return suo
}

// SetNillableBillingType sets the "billing_type" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableBillingType(s *string) *ServiceUpdateOne {
	if s != nil {
		suo.SetBillingType(*s)
	}
	return suo
}

// SetBillingFrequency sets the "billing_frequency" field.
func (suo *ServiceUpdateOne) SetBillingFrequency(s string) *ServiceUpdateOne {
	suo.mutation.SetBillingFrequency(s)
	return suo
}

// SetNillableBillingFrequency sets the "billing_frequency" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableBillingFrequency(s *string) *ServiceUpdateOne {
	if s != nil {
		suo.SetBillingFrequency(*s)
	}
	return suo
}

// ClearBillingFrequency clears the value of the "billing_frequency" field.
func (suo *ServiceUpdateOne) ClearBillingFrequency() *ServiceUpdateOne {
	suo.mutation.ClearBillingFrequency()
	return suo
}

// SetServiceStatus sets the "service_status" field.
func (suo *ServiceUpdateOne) SetServiceStatus(s string) *ServiceUpdateOne {
	suo.mutation.SetServiceStatus(s)
	return suo
}

// SetNillableServiceStatus sets the "service_status" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableServiceStatus(s *string) *ServiceUpdateOne {
	if s != nil {
		suo.SetServiceStatus(*s)
	}
	return suo
}

// SetNextBillingDate sets the "next_billing_date" field.
func (suo *ServiceUpdateOne) SetNextBillingDate(t time.Time) *ServiceUpdateOne {
	suo.mutation.SetNextBillingDate(t)
	return suo
}

// SetNillableNextBillingDate sets the "next_billing_date" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableNextBillingDate(t *time.Time) *ServiceUpdateOne {
	if t != nil {
		suo.SetNextBillingDate(*t)
	}
	return suo
}

// ClearNextBillingDate clears the value of the "next_billing_date" field.
func (suo *ServiceUpdateOne) ClearNextBillingDate() *ServiceUpdateOne {
	suo.mutation.ClearNextBillingDate()
	return suo
}

// SetActivatedAt sets the "activated_at" field.
func (suo *ServiceUpdateOne) SetActivatedAt(t time.Time) *ServiceUpdateOne {
	suo.mutation.SetActivatedAt(t)
	return suo
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (suo *ServiceUpdateOne) SetNillableActivatedAt(t *time.Time) *ServiceUpdateOne {
	if t != nil {
		suo.SetActivatedAt(*t)
	}
	return suo
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (suo *ServiceUpdateOne) ClearActivatedAt() *ServiceUpdateOne {
	suo.mutation.ClearActivatedAt()
	return suo
}

// Mutation returns the ServiceMutation object of the builder.
func (suo *ServiceUpdateOne) Mutation() *ServiceMutation {
	return suo.mutation
}

// Where appends a list predicates to the ServiceUpdate builder.
func (suo *ServiceUpdateOne) Where(ps ...predicate.Service) *ServiceUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *ServiceUpdateOne) Select(field string, fields ...string) *ServiceUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Service entity.
func (suo *ServiceUpdateOne) Save(ctx context.Context) (*Service, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *ServiceUpdateOne) SaveX(ctx context.Context) *Service {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *ServiceUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *ServiceUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *ServiceUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := service.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *ServiceUpdateOne) check() error {
	if v, ok := suo.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Service.name": %w`, err)}
		}
	}
	return nil
}

func (suo *ServiceUpdateOne) sqlSave(ctx context.Context) (_node *Service, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(service.Table, service.Columns, sqlgraph.NewFieldSpec(service.FieldID, field.TypeString))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Service.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, service.FieldID)
		for _, f := range fields {
			if !service.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != service.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Status(); ok {
		_spec.SetField(service.FieldStatus, field.TypeString, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
	}
	if suo.mutation.CreatedByCleared() {
		_spec.ClearField(service.FieldCreatedBy, field.TypeString)
	}
	if value, ok := suo.mutation.UpdatedBy(); ok {
		_spec.SetField(service.FieldUpdatedBy, field.TypeString, value)
	}
	if suo.mutation.UpdatedByCleared() {
		_spec.ClearField(service.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := suo.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
	}
	if value, ok := suo.mutation.Amount(); ok {
		_spec.SetField(service.FieldAmount, field.TypeOther, value)
	}
	if value, ok := suo.mutation.BillingType(); ok {
		_spec.SetField(service.FieldBillingType, field.TypeString, value)
	}
	if value, ok := suo.mutation.BillingFrequency(); ok {
		_spec.SetField(service.FieldBillingFrequency, field.TypeString, value)
	}
	if suo.mutation.BillingFrequencyCleared() {
		_spec.ClearField(service.FieldBillingFrequency, field.TypeString)
	}
	if value, ok := suo.mutation.ServiceStatus(); ok {
		_spec.SetField(service.FieldServiceStatus, field.TypeString, value)
	}
	if value, ok := suo.mutation.NextBillingDate(); ok {
		_spec.SetField(service.FieldNextBillingDate, field.TypeTime, value)
	}
	if suo.mutation.NextBillingDateCleared() {
		_spec.ClearField(service.FieldNextBillingDate, field.TypeTime)
	}
	if value, ok := suo.mutation.ActivatedAt(); ok {
		_spec.SetField(service.FieldActivatedAt, field.TypeTime, value)
	}
	if suo.mutation.ActivatedAtCleared() {
		_spec.ClearField(service.FieldActivatedAt, field.TypeTime)
	}
	_node = &Service{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{service.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}

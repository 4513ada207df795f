// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cadencehq/cadence/ent/billingcycle"
	"github.com/shopspring/decimal"
)

// BillingCycleCreate is the builder for creating a BillingCycle entity.
type BillingCycleCreate struct {
	config
	mutation *BillingCycleMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (bcc *BillingCycleCreate) SetTenantID(s string) *BillingCycleCreate {
	bcc.mutation.SetTenantID(s)
	return bcc
}

// SetStatus sets the "status" field.
func (bcc *BillingCycleCreate) SetStatus(s string) *BillingCycleCreate {
	bcc.mutation.SetStatus(s)
	return bcc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableStatus(s *string) *BillingCycleCreate {
	if s != nil {
		bcc.SetStatus(*s)
	}
	return bcc
}

// SetCreatedAt sets the "created_at" field.
func (bcc *BillingCycleCreate) SetCreatedAt(t time.Time) *BillingCycleCreate {
	bcc.mutation.SetCreatedAt(t)
	return bcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableCreatedAt(t *time.Time) *BillingCycleCreate {
	if t != nil {
		bcc.SetCreatedAt(*t)
	}
	return bcc
}

// SetUpdatedAt sets the "updated_at" field.
func (bcc *BillingCycleCreate) SetUpdatedAt(t time.Time) *BillingCycleCreate {
	bcc.mutation.SetUpdatedAt(t)
	return bcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableUpdatedAt(t *time.Time) *BillingCycleCreate {
	if t != nil {
		bcc.SetUpdatedAt(*t)
	}
	return bcc
}

// SetCreatedBy sets the "created_by" field.
func (bcc *BillingCycleCreate) SetCreatedBy(s string) *BillingCycleCreate {
	bcc.mutation.SetCreatedBy(s)
	return bcc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableCreatedBy(s *string) *BillingCycleCreate {
	if s != nil {
		bcc.SetCreatedBy(*s)
	}
	return bcc
}

// SetUpdatedBy sets the "updated_by" field.
func (bcc *BillingCycleCreate) SetUpdatedBy(s string) *BillingCycleCreate {
	bcc.mutation.SetUpdatedBy(s)
	return bcc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableUpdatedBy(s *string) *BillingCycleCreate {
	if s != nil {
		bcc.SetUpdatedBy(*s)
	}
	return bcc
}

// SetServiceID sets the "service_id" field.
func (bcc *BillingCycleCreate) SetServiceID(s string) *BillingCycleCreate {
	bcc.mutation.SetServiceID(s)
	return bcc
}

// SetCustomerID sets the "customer_id" field.
func (bcc *BillingCycleCreate) SetCustomerID(s string) *BillingCycleCreate {
	bcc.mutation.SetCustomerID(s)
	return bcc
}

// SetPeriodStart sets the "period_start" field.
func (bcc *BillingCycleCreate) SetPeriodStart(t time.Time) *BillingCycleCreate {
	bcc.mutation.SetPeriodStart(t)
	return bcc
}

// SetPeriodEnd sets the "period_end" field.
func (bcc *BillingCycleCreate) SetPeriodEnd(t time.Time) *BillingCycleCreate {
	bcc.mutation.SetPeriodEnd(t)
	return bcc
}

// SetDueDate sets the "due_date" field.
func (bcc *BillingCycleCreate) SetDueDate(t time.Time) *BillingCycleCreate {
	bcc.mutation.SetDueDate(t)
	return bcc
}

// SetAmount sets the "amount" field.
func (bcc *BillingCycleCreate) SetAmount(d decimal.Decimal) *BillingCycleCreate {
	bcc.mutation.SetAmount(d)
	return bcc
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableAmount(d *decimal.Decimal) *BillingCycleCreate {
	if d != nil {
		bcc.SetAmount(*d)
	}
	return bcc
}

// SetCycleStatus sets the "cycle_status" field.
func (bcc *BillingCycleCreate) SetCycleStatus(s string) *BillingCycleCreate {
	bcc.mutation.SetCycleStatus(s)
	return bcc
}

// SetNillableCycleStatus sets the "cycle_status" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableCycleStatus(s *string) *BillingCycleCreate {
	if s != nil {
		bcc.SetCycleStatus(*s)
	}
	return bcc
}

// SetInvoiceID sets the "invoice_id" field.
func (bcc *BillingCycleCreate) SetInvoiceID(s string) *BillingCycleCreate {
	bcc.mutation.SetInvoiceID(s)
	return bcc
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (bcc *BillingCycleCreate) SetNillableInvoiceID(s *string) *BillingCycleCreate {
	if s != nil {
		bcc.SetInvoiceID(*s)
	}
	return bcc
}

// SetID sets the "id" field.
func (bcc *BillingCycleCreate) SetID(s string) *BillingCycleCreate {
	bcc.mutation.SetID(s)
	return bcc
}

// Mutation returns the BillingCycleMutation object of the builder.
func (bcc *BillingCycleCreate) Mutation() *BillingCycleMutation {
	return bcc.mutation
}

// Save creates the BillingCycle in the database.
func (bcc *BillingCycleCreate) Save(ctx context.Context) (*BillingCycle, error) {
	bcc.defaults()
	return withHooks(ctx, bcc.sqlSave, bcc.mutation, bcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bcc *BillingCycleCreate) SaveX(ctx context.Context) *BillingCycle {
	v, err := bcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcc *BillingCycleCreate) Exec(ctx context.Context) error {
	_, err := bcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcc *BillingCycleCreate) ExecX(ctx context.Context) {
	if err := bcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bcc *BillingCycleCreate) defaults() {
	if _, ok := bcc.mutation.Status(); !ok {
		v := billingcycle.DefaultStatus
		bcc.mutation.SetStatus(v)
	}
	if _, ok := bcc.mutation.CreatedAt(); !ok {
		v := billingcycle.DefaultCreatedAt()
		bcc.mutation.SetCreatedAt(v)
	}
	if _, ok := bcc.mutation.UpdatedAt(); !ok {
		v := billingcycle.DefaultUpdatedAt()
		bcc.mutation.SetUpdatedAt(v)
	}
	if _, ok := bcc.mutation.Amount(); !ok {
		v := billingcycle.DefaultAmount
		bcc.mutation.SetAmount(v)
	}
	if _, ok := bcc.mutation.CycleStatus(); !ok {
		v := billingcycle.DefaultCycleStatus
		bcc.mutation.SetCycleStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bcc *BillingCycleCreate) check() error {
	if _, ok := bcc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "BillingCycle.tenant_id"`)}
	}
	if v, ok := bcc.mutation.TenantID(); ok {
		if err := billingcycle.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "BillingCycle.tenant_id": %w`, err)}
		}
	}
	if _, ok := bcc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BillingCycle.status"`)}
	}
	if _, ok := bcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillingCycle.created_at"`)}
	}
	if _, ok := bcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BillingCycle.updated_at"`)}
	}
	if _, ok := bcc.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`ent: missing required field "BillingCycle.service_id"`)}
	}
	if v, ok := bcc.mutation.ServiceID(); ok {
		if err := billingcycle.ServiceIDValidator(v); err != nil {
			return &ValidationError{Name: "service_id", err: fmt.Errorf(`ent: validator failed for field "BillingCycle.service_id": %w`, err)}
		}
	}
	if _, ok := bcc.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "BillingCycle.customer_id"`)}
	}
	if v, ok := bcc.mutation.CustomerID(); ok {
		if err := billingcycle.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "BillingCycle.customer_id": %w`, err)}
		}
	}
	if _, ok := bcc.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "BillingCycle.period_start"`)}
	}
	if _, ok := bcc.mutation.PeriodEnd(); !ok {
		return &ValidationError{Name: "period_end", err: errors.New(`ent: missing required field "BillingCycle.period_end"`)}
	}
	if _, ok := bcc.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "BillingCycle.due_date"`)}
	}
	if _, ok := bcc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "BillingCycle.amount"`)}
	}
	if _, ok := bcc.mutation.CycleStatus(); !ok {
		return &ValidationError{Name: "cycle_status", err: errors.New(`ent: missing required field "BillingCycle.cycle_status"`)}
	}
	return nil
}

func (bcc *BillingCycleCreate) sqlSave(ctx context.Context) (*BillingCycle, error) {
	if err := bcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BillingCycle.ID type: %T", _spec.ID.Value)
		}
	}
	bcc.mutation.id = &_node.ID
	bcc.mutation.done = true
	return _node, nil
}

func (bcc *BillingCycleCreate) createSpec() (*BillingCycle, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingCycle{config: bcc.config}
		_spec = sqlgraph.NewCreateSpec(billingcycle.Table, sqlgraph.NewFieldSpec(billingcycle.FieldID, field.TypeString))
	)
	if id, ok := bcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := bcc.mutation.TenantID(); ok {
		_spec.SetField(billingcycle.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := bcc.mutation.Status(); ok {
		_spec.SetField(billingcycle.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := bcc.mutation.CreatedAt(); ok {
		_spec.SetField(billingcycle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bcc.mutation.UpdatedAt(); ok {
		_spec.SetField(billingcycle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := bcc.mutation.CreatedBy(); ok {
		_spec.SetField(billingcycle.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := bcc.mutation.UpdatedBy(); ok {
		_spec.SetField(billingcycle.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := bcc.mutation.ServiceID(); ok {
		_spec.SetField(billingcycle.FieldServiceID, field.TypeString, value)
		_node.ServiceID = value
	}
	if value, ok := bcc.mutation.CustomerID(); ok {
		_spec.SetField(billingcycle.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := bcc.mutation.PeriodStart(); ok {
		_spec.SetField(billingcycle.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := bcc.mutation.PeriodEnd(); ok {
		_spec.SetField(billingcycle.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = value
	}
	if value, ok := bcc.mutation.DueDate(); ok {
		_spec.SetField(billingcycle.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := bcc.mutation.Amount(); ok {
		_spec.SetField(billingcycle.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := bcc.mutation.CycleStatus(); ok {
		_spec.SetField(billingcycle.FieldCycleStatus, field.TypeString, value)
		_node.CycleStatus = value
	}
	if value, ok := bcc.mutation.InvoiceID(); ok {
		_spec.SetField(billingcycle.FieldInvoiceID, field.TypeString, value)
		_node.InvoiceID = &value
	}
	return _node, _spec
}

// BillingCycleCreateBulk is the builder for creating many BillingCycle entities in bulk.
type BillingCycleCreateBulk struct {
	config
	err      error
	builders []*BillingCycleCreate
}

// Save creates the BillingCycle entities in the database.
func (bccb *BillingCycleCreateBulk) Save(ctx context.Context) ([]*BillingCycle, error) {
	if bccb.err != nil {
		return nil, bccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bccb.builders))
	nodes := make([]*BillingCycle, len(bccb.builders))
	mutators := make([]Mutator, len(bccb.builders))
	for i := range bccb.builders {
		func(i int, root context.Context) {
			builder := bccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingCycleMutation)
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
					_, err = mutators[i+1].Mutate(root, bccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bccb *BillingCycleCreateBulk) SaveX(ctx context.Context) []*BillingCycle {
	v, err := bccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bccb *BillingCycleCreateBulk) Exec(ctx context.Context) error {
	_, err := bccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bccb *BillingCycleCreateBulk) ExecX(ctx context.Context) {
	if err := bccb.Exec(ctx); err != nil {
		panic(err)
	}
}

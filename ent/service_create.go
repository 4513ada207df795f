// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cadencehq/cadence/ent/service"
	"github.com/shopspring/decimal"
)

// ServiceCreate is the builder for creating a Service entity.
type ServiceCreate struct {
	config
	mutation *ServiceMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (sc *ServiceCreate) SetTenantID(s string) *ServiceCreate {
	sc.mutation.SetTenantID(s)
	return sc
}

// SetStatus sets the "status" field.
func (sc *ServiceCreate) SetStatus(s string) *ServiceCreate {
	sc.mutation.SetStatus(s)
	return sc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableStatus(s *string) *ServiceCreate {
	if s != nil {
		sc.SetStatus(*s)
	}
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *ServiceCreate) SetCreatedAt(t time.Time) *ServiceCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableCreatedAt(t *time.Time) *ServiceCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// SetUpdatedAt sets the "updated_at" field.
func (sc *ServiceCreate) SetUpdatedAt(t time.Time) *ServiceCreate {
	sc.mutation.SetUpdatedAt(t)
	return sc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableUpdatedAt(t *time.Time) *ServiceCreate {
	if t != nil {
		sc.SetUpdatedAt(*t)
	}
	return sc
}

// SetCreatedBy sets the "created_by" field.
func (sc *ServiceCreate) SetCreatedBy(s string) *ServiceCreate {
	sc.mutation.SetCreatedBy(s)
	return sc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableCreatedBy(s *string) *ServiceCreate {
	if s != nil {
		sc.SetCreatedBy(*s)
	}
	return sc
}

// SetUpdatedBy sets the "updated_by" field.
func (sc *ServiceCreate) SetUpdatedBy(s string) *ServiceCreate {
	sc.mutation.SetUpdatedBy(s)
	return sc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableUpdatedBy(s *string) *ServiceCreate {
	if s != nil {
		sc.SetUpdatedBy(*s)
	}
	return sc
}

// SetCustomerID sets the "customer_id" field.
func (sc *ServiceCreate) SetCustomerID(s string) *ServiceCreate {
	sc.mutation.SetCustomerID(s)
	return sc
}

// SetName sets the "name" field.
func (sc *ServiceCreate) SetName(s string) *ServiceCreate {
	sc.mutation.SetName(s)
	return sc
}

// SetAmount sets the "amount" field.
func (sc *ServiceCreate) SetAmount(d decimal.Decimal) *ServiceCreate {
	sc.mutation.SetAmount(d)
	return sc
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableAmount(d *decimal.Decimal) *ServiceCreate {
	if d != nil {
		sc.SetAmount(*d)
	}
	return sc
}

// SetBillingType sets the "billing_type" field.
func (sc *ServiceCreate) SetBillingType(s string) *ServiceCreate {
	sc.mutation.SetBillingType(s)
	return sc
}

// SetNillableBillingType sets the "billing_type" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableBillingType(s *string) *ServiceCreate {
	if s != nil {
		sc.SetBillingType(*s)
	}
	return sc
}

// SetBillingFrequency sets the "billing_frequency" field.
func (sc *ServiceCreate) SetBillingFrequency(s string) *ServiceCreate {
	sc.mutation.SetBillingFrequency(s)
	return sc
}

// SetNillableBillingFrequency sets the "billing_frequency" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableBillingFrequency(s *string) *ServiceCreate {
	if s != nil {
		sc.SetBillingFrequency(*s)
	}
	return sc
}

// SetServiceStatus sets the "service_status" field.
func (sc *ServiceCreate) SetServiceStatus(s string) *ServiceCreate {
	sc.mutation.SetServiceStatus(s)
	return sc
}

// SetNillableServiceStatus sets the "service_status" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableServiceStatus(s *string) *ServiceCreate {
	if s != nil {
		sc.SetServiceStatus(*s)
	}
	return sc
}

// SetNextBillingDate sets the "next_billing_date" field.
func (sc *ServiceCreate) SetNextBillingDate(t time.Time) *ServiceCreate {
	sc.mutation.SetNextBillingDate(t)
	return sc
}

// SetNillableNextBillingDate sets the "next_billing_date" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableNextBillingDate(t *time.Time) *ServiceCreate {
	if t != nil {
		sc.SetNextBillingDate(*t)
	}
	return sc
}

// SetActivatedAt sets the "activated_at" field.
func (sc *ServiceCreate) SetActivatedAt(t time.Time) *ServiceCreate {
	sc.mutation.SetActivatedAt(t)
	return sc
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (sc *ServiceCreate) SetNillableActivatedAt(t *time.Time) *ServiceCreate {
	if t != nil {
		sc.SetActivatedAt(*t)
	}
	return sc
}

// SetID sets the "id" field.
func (sc *ServiceCreate) SetID(s string) *ServiceCreate {
	sc.mutation.SetID(s)
	return sc
}

// Mutation returns the ServiceMutation object of the builder.
func (sc *ServiceCreate) Mutation() *ServiceMutation {
	return sc.mutation
}

// Save creates the Service in the database.
func (sc *ServiceCreate) Save(ctx context.Context) (*Service, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *ServiceCreate) SaveX(ctx context.Context) *Service {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *ServiceCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *ServiceCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *ServiceCreate) defaults() {
	if _, ok := sc.mutation.Status(); !ok {
		v := service.DefaultStatus
		sc.mutation.SetStatus(v)
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := service.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		v := service.DefaultUpdatedAt()
		sc.mutation.SetUpdatedAt(v)
	}
	if _, ok := sc.mutation.Amount(); !ok {
		v := service.DefaultAmount
		sc.mutation.SetAmount(v)
	}
	if _, ok := sc.mutation.BillingType(); !ok {
		v := service.DefaultBillingType
		sc.mutation.SetBillingType(v)
	}
	if _, ok := sc.mutation.ServiceStatus(); !ok {
		v := service.DefaultServiceStatus
		sc.mutation.SetServiceStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *ServiceCreate) check() error {
	if _, ok := sc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Service.tenant_id"`)}
	}
	if v, ok := sc.mutation.TenantID(); ok {
		if err := service.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Service.tenant_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Service.status"`)}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Service.created_at"`)}
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Service.updated_at"`)}
	}
	if _, ok := sc.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "Service.customer_id"`)}
	}
	if v, ok := sc.mutation.CustomerID(); ok {
		if err := service.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "Service.customer_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Service.name"`)}
	}
	if v, ok := sc.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Service.name": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Service.amount"`)}
	}
	if _, ok := sc.mutation.BillingType(); !ok {
		return &ValidationError{Name: "billing_type", err: errors.New(`ent: missing required field "Service.billing_type"`)}
	}
	if _, ok := sc.mutation.ServiceStatus(); !ok {
		return &ValidationError{Name: "service_status", err: errors.New(`ent: missing required field "Service.service_status"`)}
	}
	return nil
}

func (sc *ServiceCreate) sqlSave(ctx context.Context) (*Service, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Service.ID type: %T", _spec.ID.Value)
		}
	}
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *ServiceCreate) createSpec() (*Service, *sqlgraph.CreateSpec) {
	var (
		_node = &Service{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(service.Table, sqlgraph.NewFieldSpec(service.FieldID, field.TypeString))
	)
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := sc.mutation.TenantID(); ok {
		_spec.SetField(service.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := sc.mutation.Status(); ok {
		_spec.SetField(service.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(service.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sc.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := sc.mutation.CreatedBy(); ok {
		_spec.SetField(service.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := sc.mutation.UpdatedBy(); ok {
		_spec.SetField(service.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := sc.mutation.CustomerID(); ok {
		_spec.SetField(service.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := sc.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := sc.mutation.Amount(); ok {
		_spec.SetField(service.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := sc.mutation.BillingType(); ok {
		_spec.SetField(service.FieldBillingType, field.TypeString, value)
		_node.BillingType = value
	}
	if value, ok := sc.mutation.BillingFrequency(); ok {
		_spec.SetField(service.FieldBillingFrequency, field.TypeString, value)
		_node.BillingFrequency = value
	}
	if value, ok := sc.mutation.ServiceStatus(); ok {
		_spec.SetField(service.FieldServiceStatus, field.TypeString, value)
		_node.ServiceStatus = value
	}
	if value, ok := sc.mutation.NextBillingDate(); ok {
		_spec.SetField(service.FieldNextBillingDate, field.TypeTime, value)
		_node.NextBillingDate = &value
	}
	if value, ok := sc.mutation.ActivatedAt(); ok {
		_spec.SetField(service.FieldActivatedAt, field.TypeTime, value)
		_node.ActivatedAt = &value
	}
	return _node, _spec
}

// ServiceCreateBulk is the builder for creating many Service entities in bulk.
type ServiceCreateBulk struct {
	config
	err      error
	builders []*ServiceCreate
}

// Save creates the Service entities in the database.
func (scb *ServiceCreateBulk) Save(ctx context.Context) ([]*Service, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Service, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *ServiceCreateBulk) SaveX(ctx context.Context) []*Service {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *ServiceCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *ServiceCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}

package ent

import (
	"context"

	"github.com/cadencehq/cadence/ent"
	entCustomer "github.com/cadencehq/cadence/ent/customer"
	domainCustomer "github.com/cadencehq/cadence/internal/domain/customer"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	"github.com/cadencehq/cadence/internal/types"
)

type customerRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewCustomerRepository(client postgres.IClient, logger *logger.Logger) domainCustomer.Repository {
	return &customerRepository{
		client: client,
		logger: logger,
	}
}

func (r *customerRepository) Create(ctx context.Context, c *domainCustomer.Customer) error {
	client := r.client.Querier(ctx)

	created, err := client.Customer.Create().
		SetID(c.ID).
		SetTenantID(c.TenantID).
		SetExternalID(c.ExternalID).
		SetName(c.Name).
		SetEmail(c.Email).
		SetStatus(string(c.Status)).
		SetCreatedAt(c.CreatedAt).
		SetUpdatedAt(c.UpdatedAt).
		SetCreatedBy(c.CreatedBy).
		SetUpdatedBy(c.UpdatedBy).
		Save(ctx)
	if err != nil {
		r.logger.Errorw("failed to create customer", "error", err, "customer_id", c.ID)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("Customer with this ID already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).WithHint("customer creation failed").Mark(ierr.ErrDatabase)
	}

	*c = *domainCustomer.FromEnt(created)
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*domainCustomer.Customer, error) {
	client := r.client.Querier(ctx)

	c, err := client.Customer.Query().
		Where(
			entCustomer.ID(id),
			entCustomer.TenantID(types.GetTenantID(ctx)),
			entCustomer.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHintf("Customer %s not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("customer lookup failed").Mark(ierr.ErrDatabase)
	}

	return domainCustomer.FromEnt(c), nil
}

func (r *customerRepository) Update(ctx context.Context, c *domainCustomer.Customer) error {
	client := r.client.Querier(ctx)

	updated, err := client.Customer.UpdateOneID(c.ID).
		SetExternalID(c.ExternalID).
		SetName(c.Name).
		SetEmail(c.Email).
		SetStatus(string(c.Status)).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHintf("Customer %s not found", c.ID).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).WithHint("customer update failed").Mark(ierr.ErrDatabase)
	}

	*c = *domainCustomer.FromEnt(updated)
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]*domainCustomer.Customer, error) {
	client := r.client.Querier(ctx)

	customers, err := client.Customer.Query().
		Where(
			entCustomer.TenantID(types.GetTenantID(ctx)),
			entCustomer.StatusNEQ(string(types.StatusDeleted)),
		).
		Order(ent.Asc(entCustomer.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("customer listing failed").Mark(ierr.ErrDatabase)
	}

	return domainCustomer.FromEntList(customers), nil
}

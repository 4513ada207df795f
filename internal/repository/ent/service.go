package ent

import (
	"context"

	"github.com/cadencehq/cadence/ent"
	entService "github.com/cadencehq/cadence/ent/service"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	"github.com/cadencehq/cadence/internal/types"
)

type serviceRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewServiceRepository(client postgres.IClient, logger *logger.Logger) domainService.Repository {
	return &serviceRepository{
		client: client,
		logger: logger,
	}
}

func (r *serviceRepository) Create(ctx context.Context, s *domainService.Service) error {
	client := r.client.Querier(ctx)

	builder := client.Service.Create().
		SetID(s.ID).
		SetTenantID(s.TenantID).
		SetCustomerID(s.CustomerID).
		SetName(s.Name).
		SetAmount(s.Amount).
		SetBillingType(string(s.BillingType)).
		SetBillingFrequency(string(s.BillingFrequency)).
		SetServiceStatus(string(s.ServiceStatus)).
		SetNillableNextBillingDate(s.NextBillingDate).
		SetNillableActivatedAt(s.ActivatedAt).
		SetStatus(string(s.Status)).
		SetCreatedAt(s.CreatedAt).
		SetUpdatedAt(s.UpdatedAt).
		SetCreatedBy(s.CreatedBy).
		SetUpdatedBy(s.UpdatedBy)

	created, err := builder.Save(ctx)
	if err != nil {
		r.logger.Errorw("failed to create service", "error", err, "service_id", s.ID)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("Service with this ID already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).WithHint("service creation failed").Mark(ierr.ErrDatabase)
	}

	*s = *domainService.FromEnt(created)
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id string) (*domainService.Service, error) {
	client := r.client.Querier(ctx)

	s, err := client.Service.Query().
		Where(
			entService.ID(id),
			entService.TenantID(types.GetTenantID(ctx)),
			entService.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHintf("Service %s not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("service lookup failed").Mark(ierr.ErrDatabase)
	}

	return domainService.FromEnt(s), nil
}

func (r *serviceRepository) Update(ctx context.Context, s *domainService.Service) error {
	client := r.client.Querier(ctx)

	updated, err := client.Service.UpdateOneID(s.ID).
		SetName(s.Name).
		SetAmount(s.Amount).
		SetBillingFrequency(string(s.BillingFrequency)).
		SetServiceStatus(string(s.ServiceStatus)).
		SetNillableNextBillingDate(s.NextBillingDate).
		SetNillableActivatedAt(s.ActivatedAt).
		SetStatus(string(s.Status)).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHintf("Service %s not found", s.ID).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).WithHint("service update failed").Mark(ierr.ErrDatabase)
	}

	*s = *domainService.FromEnt(updated)
	return nil
}

func (r *serviceRepository) List(ctx context.Context, customerID string) ([]*domainService.Service, error) {
	client := r.client.Querier(ctx)

	query := client.Service.Query().
		Where(
			entService.TenantID(types.GetTenantID(ctx)),
			entService.StatusNEQ(string(types.StatusDeleted)),
		)
	if customerID != "" {
		query = query.Where(entService.CustomerID(customerID))
	}

	services, err := query.
		Order(ent.Asc(entService.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("service listing failed").Mark(ierr.ErrDatabase)
	}

	return domainService.FromEntList(services), nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	_, err := client.Service.Update().
		Where(
			entService.ID(id),
			entService.TenantID(types.GetTenantID(ctx)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)
	if err != nil {
		return ierr.WithError(err).WithHint("service deletion failed").Mark(ierr.ErrDatabase)
	}

	return nil
}

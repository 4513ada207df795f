package ent

import (
	"context"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cadencehq/cadence/ent"
	entBillingCycle "github.com/cadencehq/cadence/ent/billingcycle"
	"github.com/cadencehq/cadence/ent/predicate"
	entService "github.com/cadencehq/cadence/ent/service"
	domainCycle "github.com/cadencehq/cadence/internal/domain/billingcycle"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	"github.com/cadencehq/cadence/internal/types"
)

type billingCycleRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewBillingCycleRepository(client postgres.IClient, logger *logger.Logger) domainCycle.Repository {
	return &billingCycleRepository{
		client: client,
		logger: logger,
	}
}

func (r *billingCycleRepository) Create(ctx context.Context, c *domainCycle.BillingCycle) error {
	client := r.client.Querier(ctx)

	created, err := client.BillingCycle.Create().
		SetID(c.ID).
		SetTenantID(c.TenantID).
		SetServiceID(c.ServiceID).
		SetCustomerID(c.CustomerID).
		SetPeriodStart(c.PeriodStart).
		SetPeriodEnd(c.PeriodEnd).
		SetDueDate(c.DueDate).
		SetAmount(c.Amount).
		SetCycleStatus(string(c.CycleStatus)).
		SetNillableInvoiceID(c.InvoiceID).
		SetStatus(string(c.Status)).
		SetCreatedAt(c.CreatedAt).
		SetUpdatedAt(c.UpdatedAt).
		SetCreatedBy(c.CreatedBy).
		SetUpdatedBy(c.UpdatedBy).
		Save(ctx)
	if err != nil {
		r.logger.Errorw("failed to create billing cycle", "error", err, "cycle_id", c.ID)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("Billing cycle with this ID already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).WithHint("billing cycle creation failed").Mark(ierr.ErrDatabase)
	}

	*c = *domainCycle.FromEnt(created)
	return nil
}

func (r *billingCycleRepository) Get(ctx context.Context, id string) (*domainCycle.BillingCycle, error) {
	client := r.client.Querier(ctx)

	c, err := client.BillingCycle.Query().
		Where(
			entBillingCycle.ID(id),
			entBillingCycle.TenantID(types.GetTenantID(ctx)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHintf("Billing cycle %s not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("billing cycle lookup failed").Mark(ierr.ErrDatabase)
	}

	return domainCycle.FromEnt(c), nil
}

func (r *billingCycleRepository) Update(ctx context.Context, c *domainCycle.BillingCycle) error {
	client := r.client.Querier(ctx)

	updated, err := client.BillingCycle.UpdateOneID(c.ID).
		SetDueDate(c.DueDate).
		SetCycleStatus(string(c.CycleStatus)).
		SetNillableInvoiceID(c.InvoiceID).
		SetStatus(string(c.Status)).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHintf("Billing cycle %s not found", c.ID).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).WithHint("billing cycle update failed").Mark(ierr.ErrDatabase)
	}

	*c = *domainCycle.FromEnt(updated)
	return nil
}

func (r *billingCycleRepository) ListByService(ctx context.Context, serviceID string) ([]*domainCycle.BillingCycle, error) {
	client := r.client.Querier(ctx)

	cycles, err := client.BillingCycle.Query().
		Where(
			entBillingCycle.TenantID(types.GetTenantID(ctx)),
			entBillingCycle.ServiceID(serviceID),
		).
		Order(ent.Asc(entBillingCycle.FieldPeriodStart)).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("billing cycle listing failed").Mark(ierr.ErrDatabase)
	}

	return domainCycle.FromEntList(cycles), nil
}

func (r *billingCycleRepository) ListOpenByService(ctx context.Context, serviceID string) ([]*domainCycle.BillingCycle, error) {
	client := r.client.Querier(ctx)

	cycles, err := client.BillingCycle.Query().
		Where(
			entBillingCycle.TenantID(types.GetTenantID(ctx)),
			entBillingCycle.ServiceID(serviceID),
			entBillingCycle.CycleStatusIn(
				string(types.BillingCycleStatusPending),
				string(types.BillingCycleStatusInvoicing),
			),
		).
		Order(ent.Asc(entBillingCycle.FieldPeriodStart)).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("open billing cycle listing failed").Mark(ierr.ErrDatabase)
	}

	return domainCycle.FromEntList(cycles), nil
}

// serviceNotDeleted keeps cycles whose owning service row is not
// soft-deleted. Soft-deleting a service drops its pending cycles out of the
// due-cycle query entirely, even past their period end.
func serviceNotDeleted() predicate.BillingCycle {
	return func(s *sql.Selector) {
		t := sql.Table(entService.Table)
		s.Where(sql.In(
			s.C(entBillingCycle.FieldServiceID),
			sql.Select(t.C(entService.FieldID)).
				From(t).
				Where(sql.NEQ(t.C(entService.FieldStatus), string(types.StatusDeleted))),
		))
	}
}

func (r *billingCycleRepository) ListDueAllTenants(ctx context.Context, before time.Time, limit int) ([]*domainCycle.BillingCycle, error) {
	client := r.client.Querier(ctx)

	cycles, err := client.BillingCycle.Query().
		Where(
			entBillingCycle.CycleStatus(string(types.BillingCycleStatusPending)),
			entBillingCycle.PeriodEndLTE(before),
			entBillingCycle.StatusNEQ(string(types.StatusDeleted)),
			serviceNotDeleted(),
		).
		Order(ent.Asc(entBillingCycle.FieldPeriodEnd)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("due billing cycle query failed").Mark(ierr.ErrDatabase)
	}

	return domainCycle.FromEntList(cycles), nil
}

func (r *billingCycleRepository) ListStuckInvoicing(ctx context.Context, before time.Time, limit int) ([]*domainCycle.BillingCycle, error) {
	client := r.client.Querier(ctx)

	cycles, err := client.BillingCycle.Query().
		Where(
			entBillingCycle.CycleStatus(string(types.BillingCycleStatusInvoicing)),
			entBillingCycle.UpdatedAtLT(before),
		).
		Order(ent.Asc(entBillingCycle.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("stuck billing cycle query failed").Mark(ierr.ErrDatabase)
	}

	return domainCycle.FromEntList(cycles), nil
}

func (r *billingCycleRepository) TransitionStatus(ctx context.Context, id string, from, to types.BillingCycleStatus) (bool, error) {
	client := r.client.Querier(ctx)

	// Conditional update guarded on the current status; zero affected rows
	// means another invocation owns the cycle.
	affected, err := client.BillingCycle.Update().
		Where(
			entBillingCycle.ID(id),
			entBillingCycle.CycleStatus(string(from)),
		).
		SetCycleStatus(string(to)).
		Save(ctx)
	if err != nil {
		return false, ierr.WithError(err).
			WithHintf("billing cycle %s transition %s to %s failed", id, from, to).
			Mark(ierr.ErrDatabase)
	}

	return affected > 0, nil
}

func (r *billingCycleRepository) MarkInvoiced(ctx context.Context, id string, invoiceID string) error {
	client := r.client.Querier(ctx)

	_, err := client.BillingCycle.Update().
		Where(entBillingCycle.ID(id)).
		SetCycleStatus(string(types.BillingCycleStatusInvoiced)).
		SetInvoiceID(invoiceID).
		Save(ctx)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("billing cycle %s could not be marked invoiced", id).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

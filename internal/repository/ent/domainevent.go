package ent

import (
	"context"

	"github.com/cadencehq/cadence/ent"
	entDomainEvent "github.com/cadencehq/cadence/ent/domainevent"
	domainEvent "github.com/cadencehq/cadence/internal/domain/domainevent"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	"github.com/cadencehq/cadence/internal/types"
)

type domainEventRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewDomainEventRepository(client postgres.IClient, logger *logger.Logger) domainEvent.Repository {
	return &domainEventRepository{
		client: client,
		logger: logger,
	}
}

func (r *domainEventRepository) Record(ctx context.Context, event *domainEvent.DomainEvent) error {
	client := r.client.Querier(ctx)

	r.logger.Debugw("recording domain event",
		"event_type", event.EventType,
		"entity_type", event.EntityType,
		"entity_id", event.EntityID)

	_, err := client.DomainEvent.Create().
		SetID(event.ID).
		SetTenantID(event.TenantID).
		SetEntityType(string(event.EntityType)).
		SetEntityID(event.EntityID).
		SetEventType(string(event.EventType)).
		SetPayload(event.Payload).
		SetTriggeredBy(event.TriggeredBy).
		SetCreatedAt(event.CreatedAt).
		Save(ctx)
	if err != nil {
		return ierr.WithError(err).
			WithHint("domain event recording failed").
			WithReportableDetails(map[string]any{
				"event_type": event.EventType,
				"entity_id":  event.EntityID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *domainEventRepository) ListByEntity(ctx context.Context, entityType string, entityID string) ([]*domainEvent.DomainEvent, error) {
	client := r.client.Querier(ctx)

	events, err := client.DomainEvent.Query().
		Where(
			entDomainEvent.TenantID(types.GetTenantID(ctx)),
			entDomainEvent.EntityType(entityType),
			entDomainEvent.EntityID(entityID),
		).
		Order(ent.Asc(entDomainEvent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("domain event listing failed").Mark(ierr.ErrDatabase)
	}

	return domainEvent.FromEntList(events), nil
}

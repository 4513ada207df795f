package testutil

import (
	"context"

	"github.com/cadencehq/cadence/internal/domain/domainevent"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
)

// InMemoryDomainEventStore implements domainevent.Repository
type InMemoryDomainEventStore struct {
	*InMemoryStore[*domainevent.DomainEvent]
}

func NewInMemoryDomainEventStore() *InMemoryDomainEventStore {
	return &InMemoryDomainEventStore{
		InMemoryStore: NewInMemoryStore[*domainevent.DomainEvent](),
	}
}

func (s *InMemoryDomainEventStore) Record(ctx context.Context, event *domainevent.DomainEvent) error {
	copied := *event
	if err := s.InMemoryStore.Create(ctx, event.ID, &copied); err != nil {
		return ierr.WithError(err).
			WithHint("Domain event with this ID already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryDomainEventStore) ListByEntity(ctx context.Context, entityType string, entityID string) ([]*domainevent.DomainEvent, error) {
	filterFn := func(ctx context.Context, event *domainevent.DomainEvent) bool {
		return event.TenantID == types.GetTenantID(ctx) &&
			string(event.EntityType) == entityType &&
			event.EntityID == entityID
	}
	sortFn := func(i, j *domainevent.DomainEvent) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	}
	return s.InMemoryStore.List(ctx, filterFn, sortFn)
}

// ListAll returns every recorded event regardless of tenant, ordered by
// creation time. Tests use it to assert on the audit trail.
func (s *InMemoryDomainEventStore) ListAll() []*domainevent.DomainEvent {
	sortFn := func(i, j *domainevent.DomainEvent) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	}
	events, _ := s.InMemoryStore.List(context.Background(), nil, sortFn)
	return events
}

// EventTypes returns the event types recorded for an entity in order.
func (s *InMemoryDomainEventStore) EventTypes(entityID string) []types.DomainEventType {
	var eventTypes []types.DomainEventType
	for _, event := range s.ListAll() {
		if event.EntityID == entityID {
			eventTypes = append(eventTypes, event.EventType)
		}
	}
	return eventTypes
}

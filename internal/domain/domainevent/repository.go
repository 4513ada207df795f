package domainevent

import "context"

// Repository is the append-only write contract for the audit trail. There is
// no update or delete: recorded events are immutable.
type Repository interface {
	Record(ctx context.Context, event *DomainEvent) error
	ListByEntity(ctx context.Context, entityType string, entityID string) ([]*DomainEvent, error)
}

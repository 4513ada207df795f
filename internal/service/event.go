package service

import (
	"context"

	"github.com/cadencehq/cadence/internal/api/dto"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
)

// EventService exposes the append-only audit trail for reads.
type EventService interface {
	ListByEntity(ctx context.Context, entityType types.DomainEventEntityType, entityID string) ([]*dto.DomainEventResponse, error)
}

type eventService struct {
	ServiceParams
}

func NewEventService(params ServiceParams) EventService {
	return &eventService{ServiceParams: params}
}

func (s *eventService) ListByEntity(ctx context.Context, entityType types.DomainEventEntityType, entityID string) ([]*dto.DomainEventResponse, error) {
	switch entityType {
	case types.DomainEventEntityInvoice, types.DomainEventEntityCycle, types.DomainEventEntityService:
	default:
		return nil, ierr.NewError("unknown entity type").
			WithHintf("Entity type %s has no audit trail", entityType).
			Mark(ierr.ErrValidation)
	}

	events, err := s.EventRepo.ListByEntity(ctx, string(entityType), entityID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DomainEventResponse, len(events))
	for i, e := range events {
		responses[i] = dto.NewDomainEventResponse(e)
	}
	return responses, nil
}

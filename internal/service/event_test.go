package service

import (
	"testing"
	"time"

	"github.com/cadencehq/cadence/internal/domain/domainevent"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/testutil"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/stretchr/testify/suite"
)

type EventServiceSuite struct {
	testutil.BaseServiceTestSuite
	service EventService
}

func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceSuite))
}

func (s *EventServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewEventService(ServiceParams{
		Logger:    s.GetLogger(),
		Config:    s.GetConfig(),
		DB:        s.GetDB(),
		EventRepo: s.GetStores().EventRepo,
	})
}

func (s *EventServiceSuite) record(entityID string, eventType types.DomainEventType, at time.Time) {
	event := &domainevent.DomainEvent{
		ID:          types.GenerateUUIDWithPrefix(types.UUIDPrefixDomainEvent),
		TenantID:    types.DefaultTenantID,
		EntityType:  types.DomainEventEntityInvoice,
		EntityID:    entityID,
		EventType:   eventType,
		TriggeredBy: types.TriggeredBySystem,
		CreatedAt:   at,
	}
	s.Require().NoError(s.GetStores().EventRepo.Record(s.GetContext(), event))
}

func (s *EventServiceSuite) TestListByEntityReturnsTrailInOrder() {
	now := time.Now().UTC()
	s.record("inv_1", types.DomainEventInvoiceCreated, now.Add(-2*time.Hour))
	s.record("inv_1", types.DomainEventInvoicePaid, now.Add(-time.Hour))
	s.record("inv_2", types.DomainEventInvoiceCreated, now)

	events, err := s.service.ListByEntity(s.GetContext(), types.DomainEventEntityInvoice, "inv_1")
	s.NoError(err)
	s.Require().Len(events, 2)
	s.Equal(types.DomainEventInvoiceCreated, events[0].EventType)
	s.Equal(types.DomainEventInvoicePaid, events[1].EventType)
	s.Equal("inv_1", events[0].EntityID)
}

func (s *EventServiceSuite) TestListByEntityEmptyTrail() {
	events, err := s.service.ListByEntity(s.GetContext(), types.DomainEventEntityService, "svc_unknown")
	s.NoError(err)
	s.Empty(events)
}

func (s *EventServiceSuite) TestListByEntityRejectsUnknownEntityType() {
	_, err := s.service.ListByEntity(s.GetContext(), "warehouse", "w_1")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

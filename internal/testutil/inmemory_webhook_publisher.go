package testutil

import (
	"context"
	"sync"

	"github.com/cadencehq/cadence/internal/types"
)

// InMemoryWebhookPublisher records published events for test assertions. It
// implements publisher.WebhookPublisher.
type InMemoryWebhookPublisher struct {
	mu     sync.Mutex
	events []*types.WebhookEvent
}

func NewInMemoryWebhookPublisher() *InMemoryWebhookPublisher {
	return &InMemoryWebhookPublisher{}
}

func (p *InMemoryWebhookPublisher) PublishWebhook(ctx context.Context, event *types.WebhookEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *InMemoryWebhookPublisher) Close() error {
	return nil
}

// Events returns all published events in publish order.
func (p *InMemoryWebhookPublisher) Events() []*types.WebhookEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*types.WebhookEvent(nil), p.events...)
}

// EventsByName returns published events with the given event name.
func (p *InMemoryWebhookPublisher) EventsByName(name string) []*types.WebhookEvent {
	var matched []*types.WebhookEvent
	for _, event := range p.Events() {
		if event.EventName == name {
			matched = append(matched, event)
		}
	}
	return matched
}

// Clear drops all recorded events.
func (p *InMemoryWebhookPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

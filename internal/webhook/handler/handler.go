package handler

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/pubsub"
	pubsubRouter "github.com/cadencehq/cadence/internal/pubsub/router"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/cadencehq/cadence/internal/webhook/payload"
)

// Handler consumes notification events off the bus. Delivery and templating
// belong to the downstream dispatcher; this handler validates the contract
// and records the hand-off.
type Handler interface {
	RegisterHandler(router *pubsubRouter.Router)
}

type handler struct {
	pubSub pubsub.PubSub
	config *config.WebhookConfig
	logger *logger.Logger
}

func NewHandler(
	pubSub pubsub.PubSub,
	cfg *config.Configuration,
	logger *logger.Logger,
) (Handler, error) {
	return &handler{
		pubSub: pubSub,
		config: &cfg.Webhook,
		logger: logger,
	}, nil
}

func (h *handler) RegisterHandler(router *pubsubRouter.Router) {
	router.AddNoPublishHandler(
		"notification_handler",
		h.config.Topic,
		h.pubSub,
		h.processMessage,
	)
}

func (h *handler) processMessage(msg *message.Message) error {
	var event types.WebhookEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.logger.Errorw("failed to unmarshal notification event",
			"error", err,
			"message_uuid", msg.UUID,
		)
		return nil // don't retry on unmarshal errors
	}

	var notification payload.Notification
	if err := json.Unmarshal(event.Payload, &notification); err != nil {
		h.logger.Errorw("notification payload does not match dispatcher contract",
			"error", err,
			"event_id", event.ID,
			"event_name", event.EventName,
		)
		return nil
	}

	h.logger.Infow("notification handed off to dispatcher",
		"event_id", event.ID,
		"type", notification.Type,
		"tenant_id", notification.TenantID,
		"client_id", notification.ClientID,
		"invoice_id", notification.InvoiceID,
		"service_id", notification.ServiceID,
	)

	return nil
}

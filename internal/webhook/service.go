package webhook

import (
	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/logger"
	pubsubRouter "github.com/cadencehq/cadence/internal/pubsub/router"
	"github.com/cadencehq/cadence/internal/webhook/handler"
	"github.com/cadencehq/cadence/internal/webhook/publisher"
)

// WebhookService orchestrates notification publishing and consumption
type WebhookService struct {
	config    *config.Configuration
	publisher publisher.WebhookPublisher
	handler   handler.Handler
	logger    *logger.Logger
}

func NewWebhookService(
	cfg *config.Configuration,
	publisher publisher.WebhookPublisher,
	h handler.Handler,
	l *logger.Logger,
) *WebhookService {
	return &WebhookService{
		config:    cfg,
		publisher: publisher,
		handler:   h,
		logger:    l,
	}
}

// RegisterHandlers attaches the notification consumer to the message router.
func (s *WebhookService) RegisterHandlers(router *pubsubRouter.Router) {
	if !s.config.Webhook.Enabled {
		s.logger.Info("notification service disabled")
		return
	}

	s.handler.RegisterHandler(router)
	s.logger.Info("notification handlers registered")
}

// Stop shuts down the publishing side.
func (s *WebhookService) Stop() error {
	return s.publisher.Close()
}

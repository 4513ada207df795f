package webhook

import (
	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/pubsub"
	"github.com/cadencehq/cadence/internal/pubsub/memory"
	"github.com/cadencehq/cadence/internal/webhook/handler"
	"github.com/cadencehq/cadence/internal/webhook/publisher"
	"go.uber.org/fx"
)

// Module provides all notification-related dependencies
var Module = fx.Options(
	fx.Provide(
		providePubSub,

		// Publisher for producing notification events
		publisher.NewPublisher,

		// Handler for consuming notification events
		handler.NewHandler,

		// Main webhook service
		NewWebhookService,
	),
)

func providePubSub(
	cfg *config.Configuration,
	logger *logger.Logger,
) pubsub.PubSub {
	return memory.NewPubSub(cfg, logger)
}

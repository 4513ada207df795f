package main

import (
	"context"
	"time"

	"github.com/cadencehq/cadence/internal/api"
	"github.com/cadencehq/cadence/internal/api/cron"
	v1 "github.com/cadencehq/cadence/internal/api/v1"
	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	pubsubRouter "github.com/cadencehq/cadence/internal/pubsub/router"
	"github.com/cadencehq/cadence/internal/repository"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/cadencehq/cadence/internal/validator"
	"github.com/cadencehq/cadence/internal/webhook"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// All timestamps in the system are UTC
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,

			// Postgres
			postgres.NewEntClient,
			postgres.NewClient,

			// Repositories
			repository.NewCustomerRepository,
			repository.NewServiceRepository,
			repository.NewBillingCycleRepository,
			repository.NewInvoiceRepository,
			repository.NewDomainEventRepository,

			// PubSub
			pubsubRouter.NewRouter,
		),
	)

	// Notification module (must be initialised before services)
	opts = append(opts, webhook.Module)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewCustomerService,
			service.NewServiceService,
			service.NewInvoiceService,
			service.NewEventService,
			service.NewCycleGeneratorService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	log *logger.Logger,
	customerService service.CustomerService,
	serviceService service.ServiceService,
	invoiceService service.InvoiceService,
	eventService service.EventService,
	generator service.CycleGeneratorService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(),
		Customer: v1.NewCustomerHandler(customerService, log),
		Service:  v1.NewServiceHandler(serviceService, log),
		Invoice:  v1.NewInvoiceHandler(invoiceService, log),
		Event:    v1.NewEventHandler(eventService, log),
		Billing:  cron.NewBillingHandler(generator, invoiceService, log),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	webhookService *webhook.WebhookService,
	router *pubsubRouter.Router,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
		startMessageRouter(lc, router, webhookService, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

func startMessageRouter(
	lc fx.Lifecycle,
	router *pubsubRouter.Router,
	webhookService *webhook.WebhookService,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			webhookService.RegisterHandlers(router)
			go func() {
				if err := router.Run(); err != nil {
					log.Errorw("message router stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down message router...")
			if err := webhookService.Stop(); err != nil {
				log.Errorw("failed to stop notification service", "error", err)
			}
			return router.Close()
		},
	})
}

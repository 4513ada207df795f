package service

import (
	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/customer"
	"github.com/cadencehq/cadence/internal/domain/domainevent"
	"github.com/cadencehq/cadence/internal/domain/invoice"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	webhookPublisher "github.com/cadencehq/cadence/internal/webhook/publisher"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	CustomerRepo customer.Repository
	ServiceRepo  domainService.Repository
	CycleRepo    billingcycle.Repository
	InvoiceRepo  invoice.Repository
	EventRepo    domainevent.Repository

	// Publishers
	WebhookPublisher webhookPublisher.WebhookPublisher
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	customerRepo customer.Repository,
	serviceRepo domainService.Repository,
	cycleRepo billingcycle.Repository,
	invoiceRepo invoice.Repository,
	eventRepo domainevent.Repository,
	webhookPublisher webhookPublisher.WebhookPublisher,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		DB:               db,
		CustomerRepo:     customerRepo,
		ServiceRepo:      serviceRepo,
		CycleRepo:        cycleRepo,
		InvoiceRepo:      invoiceRepo,
		EventRepo:        eventRepo,
		WebhookPublisher: webhookPublisher,
	}
}

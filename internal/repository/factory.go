package repository

import (
	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/customer"
	"github.com/cadencehq/cadence/internal/domain/domainevent"
	"github.com/cadencehq/cadence/internal/domain/invoice"
	"github.com/cadencehq/cadence/internal/domain/service"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	entRepo "github.com/cadencehq/cadence/internal/repository/ent"
)

func NewCustomerRepository(client postgres.IClient, logger *logger.Logger) customer.Repository {
	return entRepo.NewCustomerRepository(client, logger)
}

func NewServiceRepository(client postgres.IClient, logger *logger.Logger) service.Repository {
	return entRepo.NewServiceRepository(client, logger)
}

func NewBillingCycleRepository(client postgres.IClient, logger *logger.Logger) billingcycle.Repository {
	return entRepo.NewBillingCycleRepository(client, logger)
}

func NewInvoiceRepository(client postgres.IClient, logger *logger.Logger) invoice.Repository {
	return entRepo.NewInvoiceRepository(client, logger)
}

func NewDomainEventRepository(client postgres.IClient, logger *logger.Logger) domainevent.Repository {
	return entRepo.NewDomainEventRepository(client, logger)
}

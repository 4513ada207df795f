package testutil

import (
	"context"
	"time"

	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/domain/billingcycle"
	"github.com/cadencehq/cadence/internal/domain/customer"
	"github.com/cadencehq/cadence/internal/domain/domainevent"
	"github.com/cadencehq/cadence/internal/domain/invoice"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/cadencehq/cadence/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	CustomerRepo customer.Repository
	ServiceRepo  domainService.Repository
	CycleRepo    billingcycle.Repository
	InvoiceRepo  invoice.Repository
	EventRepo    domainevent.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx              context.Context
	stores           Stores
	webhookPublisher *InMemoryWebhookPublisher
	db               postgres.IClient
	logger           *logger.Logger
	config           *config.Configuration
	now              time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Cron: config.CronConfig{
			Secret:            "test-secret",
			BatchSize:         50,
			LateIssueDays:     4,
			PaymentDueWindow:  3,
			ReminderBatchSize: 100,
		},
		Webhook: config.WebhookConfig{
			Enabled: true,
			Topic:   "notifications",
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	serviceStore := NewInMemoryServiceStore()
	s.stores = Stores{
		CustomerRepo: NewInMemoryCustomerStore(),
		ServiceRepo:  serviceStore,
		CycleRepo:    NewInMemoryBillingCycleStore(serviceStore),
		InvoiceRepo:  NewInMemoryInvoiceStore(),
		EventRepo:    NewInMemoryDomainEventStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.webhookPublisher = NewInMemoryWebhookPublisher()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.CustomerRepo.(*InMemoryCustomerStore).Clear()
	s.stores.ServiceRepo.(*InMemoryServiceStore).Clear()
	s.stores.CycleRepo.(*InMemoryBillingCycleStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.EventRepo.(*InMemoryDomainEventStore).Clear()
	s.webhookPublisher.Clear()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns the test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the mock database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetWebhookPublisher returns the recording publisher
func (s *BaseServiceTestSuite) GetWebhookPublisher() *InMemoryWebhookPublisher {
	return s.webhookPublisher
}

// GetNow returns the suite's reference time, set at test setup
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

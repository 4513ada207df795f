package api

import (
	"github.com/cadencehq/cadence/internal/api/cron"
	v1 "github.com/cadencehq/cadence/internal/api/v1"
	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Customer *v1.CustomerHandler
	Service  *v1.ServiceHandler
	Invoice  *v1.InvoiceHandler
	Event    *v1.EventHandler
	Billing  *cron.BillingHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes carry tenant scoping from headers
	v1Group := router.Group("/v1", middleware.TenantMiddleware)
	registerV1Routes(v1Group, handlers)

	// cron routes are guarded by the static bearer secret
	cronGroup := router.Group("/cron", middleware.CronAuthMiddleware(cfg))
	registerCronRoutes(cronGroup, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	customers := router.Group("/customers")
	{
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("", handlers.Customer.ListCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
	}

	services := router.Group("/services")
	{
		services.POST("", handlers.Service.CreateService)
		services.GET("", handlers.Service.ListServices)
		services.GET("/:id", handlers.Service.GetService)
		services.POST("/:id/activate", handlers.Service.ActivateService)
		services.POST("/:id/pause", handlers.Service.PauseService)
		services.POST("/:id/resume", handlers.Service.ResumeService)
		services.POST("/:id/cancel", handlers.Service.CancelService)
		services.PUT("/:id/amount", handlers.Service.UpdateServiceAmount)
		services.DELETE("/:id", handlers.Service.DeleteService)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/summary", handlers.Invoice.GetFinancialSummary)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.POST("/:id/pay", handlers.Invoice.MarkInvoicePaid)
		invoices.POST("/:id/void", handlers.Invoice.VoidInvoice)
	}

	// audit trail
	router.GET("/events", handlers.Event.ListEvents)
}

func registerCronRoutes(router *gin.RouterGroup, handlers Handlers) {
	billing := router.Group("/billing")
	{
		billing.POST("/generate-invoices", handlers.Billing.GenerateInvoices)
		billing.POST("/payment-reminders", handlers.Billing.ProcessPaymentReminders)
	}
}

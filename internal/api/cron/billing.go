package cron

import (
	"net/http"

	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/gin-gonic/gin"
)

// BillingHandler handles billing related cron jobs
type BillingHandler struct {
	generator      service.CycleGeneratorService
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewBillingHandler(
	generator service.CycleGeneratorService,
	invoiceService service.InvoiceService,
	logger *logger.Logger,
) *BillingHandler {
	return &BillingHandler{
		generator:      generator,
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// GenerateInvoices runs one batch pass over due billing cycles. The response
// is 200 with per-item counts even when individual cycles failed; only a
// top-level infrastructure failure returns 500.
func (h *BillingHandler) GenerateInvoices(c *gin.Context) {
	ctx := c.Request.Context()
	response, err := h.generator.GenerateDueInvoices(ctx)
	if err != nil {
		h.logger.Errorw("failed to generate invoices",
			"error", err)

		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ProcessPaymentReminders walks outstanding invoices and emits reminder
// notifications.
func (h *BillingHandler) ProcessPaymentReminders(c *gin.Context) {
	ctx := c.Request.Context()
	response, err := h.invoiceService.ProcessPaymentReminders(ctx)
	if err != nil {
		h.logger.Errorw("failed to process payment reminders",
			"error", err)

		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

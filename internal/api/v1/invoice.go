package v1

import (
	"net/http"

	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service service.InvoiceService
	log     *logger.Logger
}

func NewInvoiceHandler(service service.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log,
	}
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	if c.Query("outstanding") == "true" {
		resp, err := h.service.ListOutstanding(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	customerID := c.Query("customer_id")
	if customerID == "" {
		c.Error(ierr.NewError("customer_id is required").
			WithHint("Provide a customer_id query parameter, or outstanding=true").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	resp, err := h.service.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	resp, err := h.service.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) GetFinancialSummary(c *gin.Context) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		c.Error(ierr.NewError("customer_id is required").
			WithHint("Provide a customer_id query parameter").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetFinancialSummary(c.Request.Context(), customerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

package v1

import (
	"net/http"

	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
	log     *logger.Logger
}

func NewEventHandler(service service.EventService, log *logger.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log,
	}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		c.Error(ierr.NewError("entity_type and entity_id are required").
			WithHint("Provide entity_type and entity_id query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListByEntity(c.Request.Context(),
		types.DomainEventEntityType(entityType), entityID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

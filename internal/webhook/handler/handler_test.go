package handler

import (
	"encoding/json"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/cadencehq/cadence/internal/config"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/cadencehq/cadence/internal/webhook/payload"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainInvoice "github.com/cadencehq/cadence/internal/domain/invoice"
)

func newTestHandler(t *testing.T) *handler {
	cfg := &config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
		Webhook: config.WebhookConfig{Enabled: true, Topic: "notifications"},
	}
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	return &handler{
		config: &cfg.Webhook,
		logger: log,
	}
}

func TestProcessMessage(t *testing.T) {
	h := newTestHandler(t)

	t.Run("valid notification is accepted", func(t *testing.T) {
		inv := &domainInvoice.Invoice{
			ID:            "inv_123",
			CustomerID:    "cust_123",
			InvoiceNumber: "INV-202506-00001",
			Total:         decimal.NewFromInt(100),
		}
		inv.TenantID = types.DefaultTenantID

		notification := payload.NewPaymentReminderNotification(inv)
		event, err := notification.ToWebhookEvent(types.TriggeredBySystem)
		require.NoError(t, err)

		raw, err := json.Marshal(event)
		require.NoError(t, err)

		msg := message.NewMessage("msg-1", raw)
		assert.NoError(t, h.processMessage(msg))
	})

	t.Run("malformed envelope is dropped without retry", func(t *testing.T) {
		msg := message.NewMessage("msg-2", []byte("not json"))
		assert.NoError(t, h.processMessage(msg))
	})

	t.Run("payload outside the contract is dropped without retry", func(t *testing.T) {
		msg := message.NewMessage("msg-3", []byte(`{"id":"webh_1","event_name":"invoice_generated","payload":"not-an-object"}`))
		assert.NoError(t, h.processMessage(msg))
	})
}

package types

import (
	"encoding/json"
	"time"
)

// WebhookEvent is the envelope published to the notification dispatcher.
// Delivery and templating are the dispatcher's concern.
type WebhookEvent struct {
	ID        string          `json:"id"`
	EventName string          `json:"event_name"`
	TenantID  string          `json:"tenant_id"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Notification event names understood by the dispatcher
const (
	WebhookEventInvoiceGenerated = "invoice_generated"
	WebhookEventPaymentReminder  = "payment_reminder"
	WebhookEventPaymentDue       = "payment_due"
)

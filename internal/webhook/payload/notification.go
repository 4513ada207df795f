package payload

import (
	"encoding/json"
	"fmt"
	"time"

	domainInvoice "github.com/cadencehq/cadence/internal/domain/invoice"
	domainService "github.com/cadencehq/cadence/internal/domain/service"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
)

// Notification is the contract understood by the downstream dispatcher.
// The client_id field carries the customer id; the dispatcher resolves
// recipients from it.
type Notification struct {
	Type            string `json:"type"`
	TenantID        string `json:"tenant_id"`
	ClientID        string `json:"client_id"`
	InvoiceID       string `json:"invoice_id,omitempty"`
	ServiceID       string `json:"service_id,omitempty"`
	Title           string `json:"title"`
	Message         string `json:"message"`
	ActionReference string `json:"action_reference,omitempty"`
}

// NewInvoiceGeneratedNotification builds the notification emitted when the
// billing run issues a new invoice.
func NewInvoiceGeneratedNotification(inv *domainInvoice.Invoice, svc *domainService.Service) *Notification {
	return &Notification{
		Type:            types.WebhookEventInvoiceGenerated,
		TenantID:        inv.TenantID,
		ClientID:        inv.CustomerID,
		InvoiceID:       inv.ID,
		ServiceID:       svc.ID,
		Title:           "New invoice issued",
		Message:         fmt.Sprintf("Invoice %s for %s has been issued for %s.", inv.InvoiceNumber, svc.Name, inv.Total.StringFixed(2)),
		ActionReference: inv.ID,
	}
}

// NewPaymentReminderNotification builds the notification for an overdue invoice.
func NewPaymentReminderNotification(inv *domainInvoice.Invoice) *Notification {
	return &Notification{
		Type:            types.WebhookEventPaymentReminder,
		TenantID:        inv.TenantID,
		ClientID:        inv.CustomerID,
		InvoiceID:       inv.ID,
		Title:           "Payment overdue",
		Message:         fmt.Sprintf("Invoice %s for %s is overdue. Please settle it as soon as possible.", inv.InvoiceNumber, inv.Total.StringFixed(2)),
		ActionReference: inv.ID,
	}
}

// NewPaymentDueNotification builds the notification for an invoice whose due
// date falls within the configured reminder window.
func NewPaymentDueNotification(inv *domainInvoice.Invoice, dueDate time.Time) *Notification {
	return &Notification{
		Type:            types.WebhookEventPaymentDue,
		TenantID:        inv.TenantID,
		ClientID:        inv.CustomerID,
		InvoiceID:       inv.ID,
		Title:           "Payment due soon",
		Message:         fmt.Sprintf("Invoice %s for %s is due on %s.", inv.InvoiceNumber, inv.Total.StringFixed(2), dueDate.Format("2006-01-02")),
		ActionReference: inv.ID,
	}
}

// ToWebhookEvent wraps the notification in the publishing envelope.
func (n *Notification) ToWebhookEvent(userID string) (*types.WebhookEvent, error) {
	raw, err := json.Marshal(n)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unable to marshal notification payload").
			Mark(ierr.ErrInvalidOperation)
	}

	return &types.WebhookEvent{
		ID:        types.GenerateUUIDWithPrefix(types.UUIDPrefixWebhookEvent),
		EventName: n.Type,
		TenantID:  n.TenantID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   raw,
	}, nil
}

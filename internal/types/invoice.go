package types

// InvoiceStatus covers both the raw stored status of an invoice and the
// effective status derived from it at read time. The raw column stores draft,
// pending, paid, void — and occasionally a persisted overdue from older
// writers. The resolver additionally returns overdue for pending invoices
// whose due date has passed.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

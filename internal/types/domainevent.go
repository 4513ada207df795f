package types

// DomainEventType identifies a state transition recorded in the append-only
// audit trail.
type DomainEventType string

const (
	DomainEventInvoiceCreated   DomainEventType = "invoice.created"
	DomainEventInvoicePaid      DomainEventType = "invoice.paid"
	DomainEventInvoiceVoided    DomainEventType = "invoice.voided"
	DomainEventCycleCreated     DomainEventType = "cycle.created"
	DomainEventCycleInvoiced    DomainEventType = "cycle.invoiced"
	DomainEventCycleSkipped     DomainEventType = "cycle.skipped"
	DomainEventServiceActivated DomainEventType = "service.activated"
	DomainEventServicePaused    DomainEventType = "service.paused"
	DomainEventServiceResumed   DomainEventType = "service.resumed"
	DomainEventServiceCancelled DomainEventType = "service.cancelled"
)

// DomainEventEntityType names the entity a domain event belongs to.
type DomainEventEntityType string

const (
	DomainEventEntityInvoice DomainEventEntityType = "invoice"
	DomainEventEntityCycle   DomainEventEntityType = "billing_cycle"
	DomainEventEntityService DomainEventEntityType = "service"
)

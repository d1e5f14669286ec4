package dto

import "time"

const (
	EventInvoiceCreated   = "invoice.created"
	EventInvoiceUpdated   = "invoice.updated"
	EventInvoiceDeleted   = "invoice.deleted"
	EventInvoiceItemAdded = "invoice.item_added"
)

// InvoiceEventMessage is the payload published on the invoice topic after a
// committed mutation.
type InvoiceEventMessage struct {
	Type       string    `json:"type"`
	InvoiceId  uint      `json:"invoice_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

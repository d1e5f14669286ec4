package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid:
		return true
	}
	return false
}

type Invoice struct {
	Id              uint
	PaymentDue      time.Time
	Description     string
	PaymentTerms    int
	ClientName      string
	ClientEmail     string
	Status          InvoiceStatus
	Total           decimal.Decimal
	SenderAddressId *uint
	ClientAddressId *uint
	CreatedAt       time.Time
	UpdatedAt       *time.Time

	// Populated only by read paths that join/preload the sender row.
	SenderAddress *Address
}

// StatusStat is one row of the per-status aggregation.
type StatusStat struct {
	Status      InvoiceStatus
	Count       int64
	TotalAmount decimal.Decimal
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceItem struct {
	Id        uint
	InvoiceId uint
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time
}

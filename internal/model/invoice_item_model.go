package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceItem struct {
	Id        uint            `gorm:"primaryKey;autoIncrement"`
	InvoiceId uint            `gorm:"not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}

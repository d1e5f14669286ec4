package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Invoice struct {
	Id              uint            `gorm:"primaryKey;autoIncrement"`
	PaymentDue      datatypes.Date  `gorm:"not null"`
	Description     string          `gorm:"type:text"`
	PaymentTerms    int             `gorm:"not null;default:30"`
	ClientName      string          `gorm:"type:varchar(255);not null"`
	ClientEmail     string          `gorm:"type:varchar(255);not null"`
	Status          string          `gorm:"type:varchar(16);not null;default:'draft';index"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SenderAddressId *uint           `gorm:"index"`
	ClientAddressId *uint           `gorm:"index"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`

	// Read-side association only. No database-level cascade: item and
	// address cleanup is done explicitly inside the delete transaction.
	SenderAddress *Address `gorm:"foreignKey:SenderAddressId"`
	ClientAddress *Address `gorm:"foreignKey:ClientAddressId"`
}

func (Invoice) TableName() string {
	return "invoices"
}

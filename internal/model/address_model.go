package model

import (
	"time"
)

type Address struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Street    string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(255);not null"`
	PostCode  string    `gorm:"type:varchar(32);not null"`
	Country   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Address) TableName() string {
	return "addresses"
}

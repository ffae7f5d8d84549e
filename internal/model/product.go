package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry with an integer on-hand quantity.
//
// Quantity is never written directly by handlers: every change goes through
// the stock service so that each mutation is paired with exactly one
// StockHistory row inside the same transaction.
type Product struct {
	ID           uint            `gorm:"primaryKey"`
	Name         string          `gorm:"size:200;index;not null"`
	CategoryID   uint            `gorm:"not null;index"`
	Description  *string         `gorm:"type:text"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity     int             `gorm:"not null;default:0"`
	ReorderLevel int             `gorm:"not null;default:10"`
	SKU          string          `gorm:"size:100;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string { return "product" }

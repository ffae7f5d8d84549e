package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed transaction header owning ordered line items.
type Sale struct {
	ID            uint            `gorm:"primaryKey"`
	CustomerID    *uint           `gorm:"index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"size:50"`
	Status        string          `gorm:"size:50;not null;default:'completed'"`
	CreatedAt     time.Time       `gorm:"index"`
	CreatedBy     *uint

	Items    []SaleItem `gorm:"foreignKey:SaleID"`
	Customer *Customer  `gorm:"foreignKey:CustomerID"`
	Creator  *User      `gorm:"foreignKey:CreatedBy"`
}

func (Sale) TableName() string { return "sale" }

// SaleItem is one line of a sale. Subtotal = Quantity × UnitPrice at the time
// of the sale and is immutable once written.
type SaleItem struct {
	ID        uint            `gorm:"primaryKey"`
	SaleID    uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (SaleItem) TableName() string { return "sale_item" }

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order lifecycle.
const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusReceived = "received"
)

// PurchaseOrder is a restocking document. Receiving it increments product
// quantities exactly once; a received order can no longer be deleted.
type PurchaseOrder struct {
	ID               uint            `gorm:"primaryKey"`
	SupplierID       *uint           `gorm:"index"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status           string          `gorm:"size:50;not null;default:'pending';index"`
	OrderDate        time.Time       `gorm:"index"`
	ExpectedDelivery *time.Time
	CreatedBy        *uint

	Items    []PurchaseItem `gorm:"foreignKey:PurchaseOrderID"`
	Supplier *Supplier      `gorm:"foreignKey:SupplierID"`
}

func (PurchaseOrder) TableName() string { return "purchase_order" }

// PurchaseItem is one line of a purchase order, structurally identical to
// SaleItem.
type PurchaseItem struct {
	ID              uint            `gorm:"primaryKey"`
	PurchaseOrderID uint            `gorm:"not null;index"`
	ProductID       uint            `gorm:"not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (PurchaseItem) TableName() string { return "purchase_item" }

package model

import "time"

// Ledger change types written by the stock service. Manual adjustments carry
// the operator-supplied reason instead.
const (
	ChangeTypeInitialStock = "initial_stock"
	ChangeTypeSale         = "sale"
	ChangeTypePurchase     = "purchase"
	ChangeTypeManual       = "manual_adjustment"
)

// StockHistory is one row of the append-only stock ledger. Rows are never
// updated or deleted after creation; a product's current quantity equals the
// sum of its QuantityChange values.
type StockHistory struct {
	ID               uint   `gorm:"primaryKey"`
	ProductID        uint   `gorm:"not null;index"`
	ChangeType       string `gorm:"size:50;not null"`
	QuantityChange   int    `gorm:"not null"` // positive = inflow, negative = outflow
	PreviousQuantity int
	NewQuantity      int
	ReferenceID      *uint
	ReferenceType    *string   `gorm:"size:50"` // "sale" | "purchase" when set
	CreatedAt        time.Time `gorm:"index"`
	CreatedBy        *uint

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (StockHistory) TableName() string { return "stock_history" }

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLine is one entered line of a sale or purchase order form.
// Lines are processed in the order the caller supplied them.
type DocumentLine struct {
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateSaleInput is the parsed POST /sale/create form.
type CreateSaleInput struct {
	CustomerID    *uint
	PaymentMethod string
	Lines         []DocumentLine
}

// CreatePurchaseInput is the parsed POST /purchase/create form.
type CreatePurchaseInput struct {
	SupplierID       *uint
	ExpectedDelivery *time.Time
	Lines            []DocumentLine
}

// AdjustStockForm is the POST /stock/adjust/:id body.
type AdjustStockForm struct {
	AdjustmentType string `form:"adjustment_type" binding:"required"` // "add" | "remove"
	Quantity       int    `form:"quantity" binding:"required,min=1"`
	Reason         string `form:"reason"`
}

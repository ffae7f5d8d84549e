package dto

import "github.com/shopspring/decimal"

// ProductResponse is returned by GET /api/product/:id.
type ProductResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Category  string          `json:"category"`
	SKU       string          `json:"sku"`
}

// CustomerResponse is one element of GET /api/customers.
type CustomerResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// AddCustomerRequest is the POST /api/customer/add body.
type AddCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address"`
}

// AddCustomerResponse acknowledges a JSON customer creation.
type AddCustomerResponse struct {
	Success    bool `json:"success"`
	CustomerID uint `json:"customer_id"`
}

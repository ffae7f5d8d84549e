package dto

// ─── Category ────────────────────────────────────────────────────────────────

type CategoryForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

// ─── Product ─────────────────────────────────────────────────────────────────

// ProductForm covers both add and edit. UnitPrice arrives as the raw form
// string and is parsed to a decimal in the service so a malformed price is a
// validation failure, not a bind error.
type ProductForm struct {
	Name         string `form:"name" binding:"required"`
	CategoryID   uint   `form:"category_id" binding:"required"`
	Description  string `form:"description"`
	UnitPrice    string `form:"unit_price" binding:"required"`
	Quantity     int    `form:"quantity"`
	ReorderLevel int    `form:"reorder_level,default=10"`
	SKU          string `form:"sku"`
}

// ─── Supplier / Customer ─────────────────────────────────────────────────────

type SupplierForm struct {
	Name          string `form:"name" binding:"required"`
	ContactPerson string `form:"contact_person"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`
	Address       string `form:"address"`
}

type CustomerForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Address string `form:"address"`
}

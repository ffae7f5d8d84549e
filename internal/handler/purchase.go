package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type PurchaseHandler struct {
	purchases service.PurchaseService
	products  service.ProductService
	suppliers service.SupplierService
	sessions  *session.Manager
}

func NewPurchaseHandler(
	purchases service.PurchaseService,
	products service.ProductService,
	suppliers service.SupplierService,
	sessions *session.Manager,
) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, products: products, suppliers: suppliers, sessions: sessions}
}

// List GET /purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	orders, err := h.purchases.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "purchases.html", gin.H{"Orders": orders})
}

// New GET /purchase/new
func (h *PurchaseHandler) New(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "new_purchase.html", gin.H{
		"Products":  products,
		"Suppliers": suppliers,
	})
}

// Create POST /purchase/create — blank line rows are skipped, ordering
// stock only moves when the order is later received.
func (h *PurchaseHandler) Create(c *gin.Context) {
	lines, err := parseDocumentLines(c, true)
	if err != nil {
		h.sessions.AddFlash(c, "Please enter valid purchase line values", "warning")
		c.Redirect(http.StatusFound, "/purchase/new")
		return
	}

	in := dto.CreatePurchaseInput{
		SupplierID:       optionalID(c.PostForm("supplier_id")),
		ExpectedDelivery: parseDate(c.PostForm("expected_delivery")),
		Lines:            lines,
	}

	if _, err := h.purchases.Create(c.Request.Context(), currentUserID(c), in); err != nil {
		if errors.Is(err, service.ErrEmptyPurchase) {
			h.sessions.AddFlash(c, err.Error(), "warning")
			c.Redirect(http.StatusFound, "/purchase/new")
			return
		}
		c.Error(err)
		return
	}

	h.sessions.AddFlash(c, "Purchase order created successfully!", "success")
	c.Redirect(http.StatusFound, "/purchases")
}

// Receive GET /purchase/receive/:id
func (h *PurchaseHandler) Receive(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/purchases")
	if !ok {
		return
	}
	if err := h.purchases.Receive(c.Request.Context(), currentUserID(c), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyReceived):
			h.sessions.AddFlash(c, err.Error(), "warning")
		case errors.Is(err, service.ErrNotFound):
			h.sessions.AddFlash(c, "Page not found!", "warning")
		default:
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Purchase order received and stock updated!", "success")
	}
	c.Redirect(http.StatusFound, "/purchases")
}

// Delete GET /purchase/delete/:id
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/purchases")
	if !ok {
		return
	}
	if err := h.purchases.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrDeleteReceivedOrder):
			h.sessions.AddFlash(c, err.Error(), "danger")
		case errors.Is(err, service.ErrNotFound):
			h.sessions.AddFlash(c, "Page not found!", "warning")
		default:
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Purchase order deleted successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/purchases")
}

// parseDate reads the yyyy-mm-dd value of a date input; blank means unset.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

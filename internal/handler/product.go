package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type ProductHandler struct {
	products   service.ProductService
	categories service.CategoryService
	sessions   *session.Manager
}

func NewProductHandler(products service.ProductService, categories service.CategoryService, sessions *session.Manager) *ProductHandler {
	return &ProductHandler{products: products, categories: categories, sessions: sessions}
}

// List GET /products — the page also hosts the add/edit forms, so it needs
// the category list.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "products.html", gin.H{
		"Products":   products,
		"Categories": categories,
	})
}

// Create POST /product/add
func (h *ProductHandler) Create(c *gin.Context) {
	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please fill in all required product fields", "warning")
		c.Redirect(http.StatusFound, "/products")
		return
	}
	user := currentUserID(c)
	if _, err := h.products.Create(c.Request.Context(), user, form); err != nil {
		switch {
		case errors.Is(err, service.ErrProductSKUExists), errors.Is(err, service.ErrInvalidPrice):
			h.sessions.AddFlash(c, err.Error(), "warning")
		default:
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Product added successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/products")
}

// Update POST /product/edit/:id — quantity is never edited here; stock moves
// only through sales, receipts, and adjustments.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/products")
	if !ok {
		return
	}
	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please fill in all required product fields", "warning")
		c.Redirect(http.StatusFound, "/products")
		return
	}
	if err := h.products.Update(c.Request.Context(), id, form); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			h.sessions.AddFlash(c, "Page not found!", "warning")
		case errors.Is(err, service.ErrProductSKUExists), errors.Is(err, service.ErrInvalidPrice):
			h.sessions.AddFlash(c, err.Error(), "warning")
		default:
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Product updated successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/products")
}

// Delete GET /product/delete/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/products")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sessions.AddFlash(c, "Page not found!", "warning")
		} else {
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Product deleted successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/products")
}

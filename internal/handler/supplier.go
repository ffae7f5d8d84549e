package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type SupplierHandler struct {
	svc      service.SupplierService
	sessions *session.Manager
}

func NewSupplierHandler(svc service.SupplierService, sessions *session.Manager) *SupplierHandler {
	return &SupplierHandler{svc: svc, sessions: sessions}
}

// List GET /suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "suppliers.html", gin.H{"Suppliers": suppliers})
}

// Create POST /supplier/add
func (h *SupplierHandler) Create(c *gin.Context) {
	var form dto.SupplierForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter a supplier name", "warning")
		c.Redirect(http.StatusFound, "/suppliers")
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), form); err != nil {
		c.Error(err)
		return
	}
	h.sessions.AddFlash(c, "Supplier added successfully!", "success")
	c.Redirect(http.StatusFound, "/suppliers")
}

// Update POST /supplier/edit/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/suppliers")
	if !ok {
		return
	}
	var form dto.SupplierForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter a supplier name", "warning")
		c.Redirect(http.StatusFound, "/suppliers")
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, form); err != nil {
		h.sessions.AddFlash(c, "Page not found!", "warning")
	} else {
		h.sessions.AddFlash(c, "Supplier updated successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/suppliers")
}

// Delete GET /supplier/delete/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/suppliers")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.sessions.AddFlash(c, "Page not found!", "warning")
	} else {
		h.sessions.AddFlash(c, "Supplier deleted successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/suppliers")
}

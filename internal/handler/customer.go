package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type CustomerHandler struct {
	svc      service.CustomerService
	sessions *session.Manager
}

func NewCustomerHandler(svc service.CustomerService, sessions *session.Manager) *CustomerHandler {
	return &CustomerHandler{svc: svc, sessions: sessions}
}

// List GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "customers.html", gin.H{"Customers": customers})
}

// Create POST /customer/add
func (h *CustomerHandler) Create(c *gin.Context) {
	var form dto.CustomerForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter a customer name", "warning")
		c.Redirect(http.StatusFound, "/customers")
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), form); err != nil {
		c.Error(err)
		return
	}
	h.sessions.AddFlash(c, "Customer added successfully!", "success")
	c.Redirect(http.StatusFound, "/customers")
}

// Update POST /customer/edit/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/customers")
	if !ok {
		return
	}
	var form dto.CustomerForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter a customer name", "warning")
		c.Redirect(http.StatusFound, "/customers")
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, form); err != nil {
		h.sessions.AddFlash(c, "Page not found!", "warning")
	} else {
		h.sessions.AddFlash(c, "Customer updated successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/customers")
}

// Delete GET /customer/delete/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/customers")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.sessions.AddFlash(c, "Page not found!", "warning")
	} else {
		h.sessions.AddFlash(c, "Customer deleted successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/customers")
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type CategoryHandler struct {
	svc      service.CategoryService
	sessions *session.Manager
}

func NewCategoryHandler(svc service.CategoryService, sessions *session.Manager) *CategoryHandler {
	return &CategoryHandler{svc: svc, sessions: sessions}
}

// List GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "categories.html", gin.H{"Categories": categories})
}

// Create POST /category/add
func (h *CategoryHandler) Create(c *gin.Context) {
	var form dto.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter a category name", "warning")
		c.Redirect(http.StatusFound, "/categories")
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), form); err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			h.sessions.AddFlash(c, err.Error(), "warning")
		} else {
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Category added successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/categories")
}

// Update POST /category/edit/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/categories")
	if !ok {
		return
	}
	var form dto.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter a category name", "warning")
		c.Redirect(http.StatusFound, "/categories")
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, form); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sessions.AddFlash(c, "Page not found!", "warning")
		} else {
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Category updated successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/categories")
}

// Delete GET /category/delete/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/categories")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryHasProducts):
			h.sessions.AddFlash(c, err.Error(), "danger")
		case errors.Is(err, service.ErrNotFound):
			h.sessions.AddFlash(c, "Page not found!", "warning")
		default:
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Category deleted successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/categories")
}

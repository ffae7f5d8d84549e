package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type StockHandler struct {
	stock    service.StockService
	products service.ProductService
	sessions *session.Manager
}

func NewStockHandler(stock service.StockService, products service.ProductService, sessions *session.Manager) *StockHandler {
	return &StockHandler{stock: stock, products: products, sessions: sessions}
}

// Manage GET /stock
func (h *StockHandler) Manage(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "stock.html", gin.H{"Products": products})
}

// Adjust POST /stock/adjust/:id
func (h *StockHandler) Adjust(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/stock")
	if !ok {
		return
	}
	var form dto.AdjustStockForm
	if err := c.ShouldBind(&form); err != nil {
		h.sessions.AddFlash(c, "Please enter a valid adjustment quantity", "warning")
		c.Redirect(http.StatusFound, "/stock")
		return
	}
	if err := h.stock.Adjust(c.Request.Context(), currentUserID(c), id, form); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sessions.AddFlash(c, "Page not found!", "warning")
		} else {
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Stock adjusted successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/stock")
}

// History GET /stock/history — latest 100 ledger entries.
func (h *StockHandler) History(c *gin.Context) {
	history, err := h.stock.History(c.Request.Context(), 100)
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "stock_history.html", gin.H{"History": history})
}

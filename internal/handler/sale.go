package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type SaleHandler struct {
	sales     service.SaleService
	products  service.ProductService
	customers service.CustomerService
	sessions  *session.Manager
}

func NewSaleHandler(
	sales service.SaleService,
	products service.ProductService,
	customers service.CustomerService,
	sessions *session.Manager,
) *SaleHandler {
	return &SaleHandler{sales: sales, products: products, customers: customers, sessions: sessions}
}

// List GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.sales.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "sales.html", gin.H{"Sales": sales})
}

// New GET /sale/new — only in-stock products are offered.
func (h *SaleHandler) New(c *gin.Context) {
	products, err := h.products.ListInStock(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "new_sale.html", gin.H{
		"Products":  products,
		"Customers": customers,
	})
}

// Create POST /sale/create
func (h *SaleHandler) Create(c *gin.Context) {
	lines, err := parseDocumentLines(c, false)
	if err != nil {
		h.sessions.AddFlash(c, "Please enter valid sale line values", "warning")
		c.Redirect(http.StatusFound, "/sale/new")
		return
	}

	in := dto.CreateSaleInput{
		CustomerID:    optionalID(c.PostForm("customer_id")),
		PaymentMethod: c.PostForm("payment_method"),
		Lines:         lines,
	}

	sale, err := h.sales.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		var short *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrEmptySale):
			h.sessions.AddFlash(c, err.Error(), "warning")
		case errors.As(err, &short):
			h.sessions.AddFlash(c, short.Error(), "danger")
		case errors.Is(err, service.ErrNotFound):
			h.sessions.AddFlash(c, "Page not found!", "warning")
		default:
			c.Error(err)
			return
		}
		c.Redirect(http.StatusFound, "/sale/new")
		return
	}

	h.sessions.AddFlash(c, "Sale created successfully!", "success")
	c.Redirect(http.StatusFound, fmt.Sprintf("/sale/invoice/%d", sale.ID))
}

// Invoice GET /sale/invoice/:id
func (h *SaleHandler) Invoice(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/sales")
	if !ok {
		return
	}
	sale, err := h.sales.Get(c.Request.Context(), id)
	if err != nil {
		h.sessions.AddFlash(c, "Page not found!", "warning")
		c.Redirect(http.StatusFound, "/sales")
		return
	}
	render(c, h.sessions, "invoice.html", gin.H{"Sale": sale})
}

// Delete GET /sale/delete/:id
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.sessions, "/sales")
	if !ok {
		return
	}
	if err := h.sales.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sessions.AddFlash(c, "Page not found!", "warning")
		} else {
			c.Error(err)
			return
		}
	} else {
		h.sessions.AddFlash(c, "Sale deleted and stock restored!", "success")
	}
	c.Redirect(http.StatusFound, "/sales")
}

// parseDocumentLines reads the parallel product_id[] / quantity[] /
// unit_price[] arrays of the sale and purchase forms, preserving submission
// order. With skipBlank set, rows with an empty product id are dropped the
// way the purchase form leaves trailing empty rows.
func parseDocumentLines(c *gin.Context, skipBlank bool) ([]dto.DocumentLine, error) {
	ids := c.PostFormArray("product_id[]")
	quantities := c.PostFormArray("quantity[]")
	prices := c.PostFormArray("unit_price[]")

	lines := make([]dto.DocumentLine, 0, len(ids))
	for i, raw := range ids {
		if raw == "" && skipBlank {
			continue
		}
		if i >= len(quantities) || i >= len(prices) {
			return nil, errors.New("mismatched line arrays")
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		qty, err := strconv.Atoi(quantities[i])
		if err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(prices[i])
		if err != nil {
			return nil, err
		}
		lines = append(lines, dto.DocumentLine{
			ProductID: uint(id),
			Quantity:  qty,
			UnitPrice: price,
		})
	}
	return lines, nil
}

// optionalID parses an optional select value; "" means none chosen.
func optionalID(raw string) *uint {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

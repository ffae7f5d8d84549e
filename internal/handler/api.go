package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/apierror"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/dto"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
)

// APIHandler serves the JSON endpoints behind the sale form: product lookups
// and inline customer creation.
type APIHandler struct {
	products  service.ProductService
	customers service.CustomerService
}

func NewAPIHandler(products service.ProductService, customers service.CustomerService) *APIHandler {
	return &APIHandler{products: products, customers: customers}
}

// GetProduct GET /api/product/:id
func (h *APIHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid product id"))
		return
	}
	p, err := h.products.Get(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	category := ""
	if p.Category != nil {
		category = p.Category.Name
	}
	c.JSON(http.StatusOK, dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  p.Quantity,
		Category:  category,
		SKU:       p.SKU,
	})
}

// ListCustomers GET /api/customers
func (h *APIHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list customers"))
		return
	}
	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		resp = append(resp, dto.CustomerResponse{
			ID:    cu.ID,
			Name:  cu.Name,
			Email: cu.Email,
			Phone: cu.Phone,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// AddCustomer POST /api/customer/add
func (h *APIHandler) AddCustomer(c *gin.Context) {
	var req dto.AddCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	customer, err := h.customers.Create(c.Request.Context(), dto.CustomerForm{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create customer"))
		return
	}
	c.JSON(http.StatusOK, dto.AddCustomerResponse{Success: true, CustomerID: customer.ID})
}

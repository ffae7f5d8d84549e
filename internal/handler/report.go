package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reports  service.ReportService
	exports  service.ExportService
	sessions *session.Manager
}

func NewReportHandler(reports service.ReportService, exports service.ExportService, sessions *session.Manager) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports, sessions: sessions}
}

// Show GET /reports
func (h *ReportHandler) Show(c *gin.Context) {
	data, err := h.reports.Reports(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "reports.html", gin.H{"Data": data})
}

// ExportSales GET /reports/export/sales
func (h *ReportHandler) ExportSales(c *gin.Context) {
	buf, filename, err := h.exports.ExportSales(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	writeXLSX(c, filename, buf.Bytes())
}

// ExportProducts GET /reports/export/products
func (h *ReportHandler) ExportProducts(c *gin.Context) {
	buf, filename, err := h.exports.ExportProducts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	writeXLSX(c, filename, buf.Bytes())
}

// ExportInventory GET /reports/export/inventory
func (h *ReportHandler) ExportInventory(c *gin.Context) {
	buf, filename, err := h.exports.ExportInventory(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	writeXLSX(c, filename, buf.Bytes())
}

func writeXLSX(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, body)
}

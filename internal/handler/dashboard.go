package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/udhayakumar-002/inventory-management-system-v3/internal/service"
	"github.com/udhayakumar-002/inventory-management-system-v3/internal/session"
)

type DashboardHandler struct {
	reports  service.ReportService
	sessions *session.Manager
}

func NewDashboardHandler(reports service.ReportService, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{reports: reports, sessions: sessions}
}

// Show GET /dashboard
func (h *DashboardHandler) Show(c *gin.Context) {
	data, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	render(c, h.sessions, "dashboard.html", gin.H{"Data": data})
}

package handlers

import (
	"net/http"

	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for dashboard statistics.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvc
}

func newDashboardHandler(rs portssvc.ReportingSvc) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the dashboard routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newDashboardHandler(reportingService)

	rg.GET("/dashboard/stats", h.getStats)
}

// getStats godoc
// @Summary Get dashboard statistics
// @Description Returns today's sales total, net VAT payable, total inventory value, recent sales and low stock items.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardStatsResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	stats, err := h.reportingService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

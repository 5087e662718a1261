package handler

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/request"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	location         *time.Location
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, location *time.Location) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		location:         location,
	}
}

// GetStats handles GET /dashboard. The range defaults to the last 30 days
// when no dates are given.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var req request.DateRangeRequest
	var start, end time.Time

	if c.Query("start_date") == "" && c.Query("end_date") == "" {
		now := time.Now().In(h.location)
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.location).AddDate(0, 0, 1)
		start = end.AddDate(0, 0, -30)
	} else {
		if err := c.ShouldBindQuery(&req); err != nil {
			response.BadRequest(c, "start_date and end_date are required")
			return
		}
		var ok bool
		start, end, ok = parseDateRange(req.StartDate, req.EndDate, h.location)
		if !ok {
			response.BadRequest(c, "Invalid date range")
			return
		}
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

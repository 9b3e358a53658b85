package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/services"
	"github.com/sitedesk/sitedesk/pkg/response"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: svc}
}

// Overview returns the landing-page aggregates
// GET /api/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	response.Success(c, h.dashboardService.Overview(time.Now()))
}

// ProjectStats returns one project's task summary
// GET /api/dashboard/projects/:id
func (h *DashboardHandler) ProjectStats(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	response.Success(c, h.dashboardService.ProjectTaskStats(id, time.Now()))
}

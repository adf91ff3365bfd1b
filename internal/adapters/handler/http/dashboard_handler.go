package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/stats/streaks", h.GetStreaks)
}

// GetDashboard godoc
// @Summary  Twelve-month heatmap with buckets and streaks
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} heatmap.Dashboard
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetStreaks godoc
// @Summary  Current and longest clean streaks
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} heatmap.Streaks
// @Router   /stats/streaks [get]
func (h *DashboardHandler) GetStreaks(c *gin.Context) {
	s, err := h.svc.Streaks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

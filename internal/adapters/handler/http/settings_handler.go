package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
)

type SettingsHandler struct {
	svc *services.StateService
}

func NewSettingsHandler(svc *services.StateService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

type startDateRequest struct {
	StartDate string `json:"startDate" binding:"required"`
}

func (h *SettingsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/settings", h.GetSettings)
	r.PUT("/settings/start-date", h.SetStartDate)
	r.DELETE("/data", h.ClearAll)
}

// GetSettings godoc
// @Summary  Current settings
// @Tags     settings
// @Produce  json
// @Success  200 {object} domain.Settings
// @Router   /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap.Settings)
}

// SetStartDate godoc
// @Summary  Change the tracking start date
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    body body startDateRequest true "YYYY-MM-DD"
// @Success  200 {object} domain.Settings
// @Failure  400 {object} map[string]string
// @Router   /settings/start-date [put]
func (h *SettingsHandler) SetStartDate(c *gin.Context) {
	var req startDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := h.svc.SetStartDate(c.Request.Context(), req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap.Settings)
}

// ClearAll godoc
// @Summary  Erase habits, history and notes; tracking restarts today
// @Tags     settings
// @Success  204
// @Router   /data [delete]
func (h *SettingsHandler) ClearAll(c *gin.Context) {
	if _, err := h.svc.ClearAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

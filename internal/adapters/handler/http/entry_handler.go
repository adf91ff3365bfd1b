package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
)

type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler {
	return &EntryHandler{
		svc: svc,
	}
}

type toggleRequest struct {
	Habit string `json:"habit" binding:"required"`
}

type noteRequest struct {
	Text string `json:"text"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/today/toggle", h.ToggleToday)

	days := router.Group("/days")
	{
		days.GET("/:date", h.GetDay)
		days.PUT("/:date/note", h.SaveNote)
	}
}

// ToggleToday godoc
// @Summary  Flip a habit in today's log
// @Tags     days
// @Accept   json
// @Produce  json
// @Param    body body toggleRequest true "Habit name"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} map[string]string
// @Router   /today/toggle [post]
func (h *EntryHandler) ToggleToday(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	done, err := h.svc.ToggleToday(c.Request.Context(), req.Habit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits_done": done})
}

// GetDay godoc
// @Summary  Habits done and note of one day
// @Tags     days
// @Produce  json
// @Param    date path string true "YYYY-MM-DD"
// @Success  200 {object} services.DayDetail
// @Failure  400 {object} map[string]string
// @Router   /days/{date} [get]
func (h *EntryHandler) GetDay(c *gin.Context) {
	day, err := h.svc.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// SaveNote godoc
// @Summary  Save the journal note of a tracked day; empty text removes it
// @Tags     days
// @Accept   json
// @Produce  json
// @Param    date path string      true "YYYY-MM-DD"
// @Param    body body noteRequest true "Note"
// @Success  200 {object} services.DayDetail
// @Failure  422 {object} map[string]string
// @Router   /days/{date}/note [put]
func (h *EntryHandler) SaveNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	day, err := h.svc.SaveNote(c.Request.Context(), c.Param("date"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

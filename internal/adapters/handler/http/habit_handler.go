package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateWeightRequest struct {
	Weight *int `json:"weight" binding:"required"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.PUT("/:id/weight", h.UpdateWeight)
		habits.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary  List habits
// @Tags     habits
// @Produce  json
// @Success  200 {array} domain.Habit
// @Router   /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary  Add a habit with weight 1
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    body body createHabitRequest true "Habit name"
// @Success  201 {object} domain.Habit
// @Failure  400 {object} map[string]string
// @Failure  409 {object} map[string]string
// @Router   /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	habit, err := h.svc.Add(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// UpdateWeight godoc
// @Summary  Change a habit's weight (values below 1 become 1)
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    id   path string              true "Habit ID"
// @Param    body body updateWeightRequest true "New weight"
// @Success  200 {object} domain.Habit
// @Failure  404 {object} map[string]string
// @Router   /habits/{id}/weight [put]
func (h *HabitHandler) UpdateWeight(c *gin.Context) {
	var req updateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	habit, err := h.svc.UpdateWeight(c.Request.Context(), c.Param("id"), *req.Weight)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary  Delete a habit; logged days keep its name
// @Tags     habits
// @Param    id path string true "Habit ID"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

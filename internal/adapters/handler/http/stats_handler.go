package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/habits/:id/stats", h.GetHabitStats)
	router.GET("/stats", h.ListStats)
}

// GetHabitStats godoc
// @Summary Statistics of one habit
// @Description Total completions, current and longest streak, completion rate for today (UTC).
// @Tags stats
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} domain.HabitStats
// @Failure 404 {object} errorResponse
// @Router /habits/{id}/stats [get]
func (h *StatsHandler) GetHabitStats(c *gin.Context) {
	stats, err := h.svc.GetHabitStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListStats godoc
// @Summary Statistics of every habit
// @Tags stats
// @Produce json
// @Param category_id query string false "Only habits of this category"
// @Success 200 {array} domain.HabitStats
// @Router /stats [get]
func (h *StatsHandler) ListStats(c *gin.Context) {
	list, err := h.svc.ListHabitStats(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

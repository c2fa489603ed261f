package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
)

type HabitLogHandler struct {
	svc *services.HabitLogService
}

func NewHabitLogHandler(svc *services.HabitLogService) *HabitLogHandler {
	return &HabitLogHandler{svc: svc}
}

func (h *HabitLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits/:id")
	{
		habits.POST("/log", h.Log)
		habits.GET("/logs", h.List)
		habits.DELETE("/logs/:log_id", h.Delete)
	}
}

// Log godoc
// @Summary Record a completion
// @Description Without a date the completion is recorded now. One completion per UTC day.
// @Tags logs
// @Produce json
// @Param id path string true "Habit ID"
// @Param date query string false "Completion time (RFC 3339 or YYYY-MM-DD)"
// @Success 201 {object} domain.HabitLog
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /habits/{id}/log [post]
func (h *HabitLogHandler) Log(c *gin.Context) {
	completedAt, err := parseOptionalTimestamp(c.Query("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	entry, err := h.svc.Log(c.Request.Context(), c.Param("id"), completedAt)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List godoc
// @Summary List completions of a habit
// @Tags logs
// @Produce json
// @Param id path string true "Habit ID"
// @Param start_date query string false "Inclusive lower bound"
// @Param end_date query string false "Exclusive upper bound"
// @Success 200 {array} domain.HabitLog
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /habits/{id}/logs [get]
func (h *HabitLogHandler) List(c *gin.Context) {
	start, err := parseOptionalTimestamp(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid start_date format"})
		return
	}
	end, err := parseOptionalTimestamp(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid end_date format"})
		return
	}

	var from, to time.Time
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}

	logs, err := h.svc.List(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// Delete godoc
// @Summary Delete a completion
// @Tags logs
// @Produce json
// @Param id path string true "Habit ID"
// @Param log_id path string true "Log ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /habits/{id}/logs/{log_id} [delete]
func (h *HabitLogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.Param("log_id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Habit log deleted"})
}

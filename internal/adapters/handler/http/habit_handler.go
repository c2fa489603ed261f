package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{svc: svc}
}

type createHabitRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	CustomDays  []int  `json:"custom_days"`
	CategoryID  string `json:"category_id"`
}

type updateHabitRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency"`
	CustomDays  []int   `json:"custom_days"`
	CategoryID  *string `json:"category_id"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:id", h.Get)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Create habit
// @Description Frequency defaults to daily when omitted.
// @Tags habits
// @Accept json
// @Produce json
// @Param request body createHabitRequest true "Habit"
// @Success 201 {object} domain.Habit
// @Failure 400 {object} errorResponse
// @Router /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if req.Frequency == "" {
		req.Frequency = domain.HabitFreqDaily
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		CustomDays:  req.CustomDays,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// List godoc
// @Summary List habits
// @Tags habits
// @Produce json
// @Param category_id query string false "Only habits of this category"
// @Success 200 {array} domain.Habit
// @Router /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Get habit
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} domain.Habit
// @Failure 404 {object} errorResponse
// @Router /habits/{id} [get]
func (h *HabitHandler) Get(c *gin.Context) {
	habit, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

// Update godoc
// @Summary Update habit (only supplied fields)
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body updateHabitRequest true "Fields to change"
// @Success 200 {object} domain.Habit
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /habits/{id} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		CustomDays:  req.CustomDays,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary Delete habit and its logs
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Habit deleted"})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
)

type CountdownHandler struct {
	svc *services.CountdownService
}

func NewCountdownHandler(svc *services.CountdownService) *CountdownHandler {
	return &CountdownHandler{svc: svc}
}

type createCountdownRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	TargetDate   string `json:"target_date" binding:"required"`
	NotifyBefore *int   `json:"notify_before"`
	IsTimer      bool   `json:"is_timer"`
}

type updateCountdownRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	TargetDate   *string `json:"target_date"`
	NotifyBefore *int    `json:"notify_before"`
	IsTimer      *bool   `json:"is_timer"`
}

func (h *CountdownHandler) RegisterRoutes(router *gin.RouterGroup) {
	countdowns := router.Group("/countdowns")
	{
		countdowns.POST("", h.Create)
		countdowns.GET("", h.List)
		countdowns.GET("/:id", h.Get)
		countdowns.PUT("/:id", h.Update)
		countdowns.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Create countdown
// @Tags countdowns
// @Accept json
// @Produce json
// @Param request body createCountdownRequest true "Countdown"
// @Success 201 {object} domain.Countdown
// @Failure 400 {object} errorResponse
// @Router /countdowns [post]
func (h *CountdownHandler) Create(c *gin.Context) {
	var req createCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	target, err := domain.ParseTimestamp(req.TargetDate)
	if err != nil {
		handleError(c, err)
		return
	}

	countdown, err := h.svc.Create(c.Request.Context(), services.CreateCountdownInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetDate:   target,
		NotifyBefore: req.NotifyBefore,
		IsTimer:      req.IsTimer,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, countdown)
}

// List godoc
// @Summary List countdowns ordered by target date
// @Tags countdowns
// @Produce json
// @Success 200 {array} domain.Countdown
// @Router /countdowns [get]
func (h *CountdownHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Get countdown
// @Tags countdowns
// @Produce json
// @Param id path string true "Countdown ID"
// @Success 200 {object} domain.Countdown
// @Failure 404 {object} errorResponse
// @Router /countdowns/{id} [get]
func (h *CountdownHandler) Get(c *gin.Context) {
	countdown, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, countdown)
}

// Update godoc
// @Summary Update countdown (only supplied fields)
// @Tags countdowns
// @Accept json
// @Produce json
// @Param id path string true "Countdown ID"
// @Param request body updateCountdownRequest true "Fields to change"
// @Success 200 {object} domain.Countdown
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /countdowns/{id} [put]
func (h *CountdownHandler) Update(c *gin.Context) {
	var req updateCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	input := services.UpdateCountdownInput{
		ID:           c.Param("id"),
		Title:        req.Title,
		Description:  req.Description,
		NotifyBefore: req.NotifyBefore,
		IsTimer:      req.IsTimer,
	}

	if req.TargetDate != nil {
		target, err := domain.ParseTimestamp(*req.TargetDate)
		if err != nil {
			handleError(c, err)
			return
		}
		input.TargetDate = &target
	}

	countdown, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, countdown)
}

// Delete godoc
// @Summary Delete countdown
// @Tags countdowns
// @Produce json
// @Param id path string true "Countdown ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /countdowns/{id} [delete]
func (h *CountdownHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Countdown deleted"})
}

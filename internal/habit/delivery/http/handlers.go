package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/habit"
	"ai-health-platform/pkg/response"
	"ai-health-platform/pkg/scope"
)

// Create godoc
// @Summary     Create habit
// @Description Adds a new habit to the caller's tracker.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createHabitReq true "Habit fields"
// @Success     200 {object} habitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/habits [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createHabitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "habit.http.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newHabitResp(created))
}

// List godoc
// @Summary     List habits
// @Description Returns the caller's active habits.
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} habitResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/habits [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	habits, err := h.uc.List(ctx, sc)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newHabitListResp(habits))
}

// Log godoc
// @Summary     Log habit completion
// @Description Records a completion for a habit and updates the streak.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Habit ID"
// @Param       body body logHabitReq true "Log entry"
// @Success     200 {object} logResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/habits/{id}/log [POST]
func (h *handler) Log(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req logHabitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Log(ctx, sc, c.Param("id"), habit.LogInput{
		Completed: req.Completed,
		Notes:     req.Notes,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, logResp{Message: "Habit logged successfully", Streak: output.Streak})
}

// Suggestions godoc
// @Summary     Habit suggestions
// @Description Returns catalogue habits recommended for a disease risk.
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
// @Param       disease_type query string false "diabetes | heart_disease | pcos"
// @Success     200 {array} habit.Suggestion
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/habits/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	var req suggestionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	suggestions, err := h.uc.Suggestions(ctx, req.DiseaseType)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, suggestions)
}

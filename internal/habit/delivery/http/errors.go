package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/habit"
	"ai-health-platform/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case habit.ErrHabitNotFound:
		response.NotFound(c, err)
	case habit.ErrUnknownDisease:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

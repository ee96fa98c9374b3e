package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/health"
	"ai-health-platform/internal/health/predictor"
	"ai-health-platform/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, predictor.ErrInvalidInput):
		response.Error(c, err, nil)
	case errors.Is(err, health.ErrUnknownDisease):
		response.Error(c, err, nil)
	case errors.Is(err, health.ErrProfileNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}

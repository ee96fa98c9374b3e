package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/auth"
	"ai-health-platform/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case auth.ErrEmailTaken:
		response.Conflict(c, err)
	case auth.ErrInvalidCredentials, auth.ErrAccountDisabled:
		response.Unauthorized(c)
	case auth.ErrUserNotFound:
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}

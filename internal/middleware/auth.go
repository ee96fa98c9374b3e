package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ai-health-platform/pkg/response"
	"ai-health-platform/pkg/scope"
)

// Auth verifies the Bearer access token and attaches the user scope to the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth.Verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		scope.SetToContext(c, sc)
		c.Next()
	}
}

// OptionalAuth attaches the user scope when a valid Bearer token is present
// but lets anonymous requests through. Used by public endpoints that enrich
// behavior for signed-in users.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if sc, err := m.jwtManager.Verify(token); err == nil {
				scope.SetToContext(c, sc)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

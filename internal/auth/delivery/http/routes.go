package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.GET("/me", mw.Auth(), h.Me)
		authGroup.PUT("/profile", mw.Auth(), h.UpdateProfile)
	}
}

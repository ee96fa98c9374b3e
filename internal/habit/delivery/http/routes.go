package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	habitGroup := rg.Group("/habits", mw.Auth())
	{
		habitGroup.POST("", h.Create)
		habitGroup.GET("", h.List)
		habitGroup.GET("/suggestions", h.Suggestions)
		habitGroup.POST("/:id/log", h.Log)
	}
}

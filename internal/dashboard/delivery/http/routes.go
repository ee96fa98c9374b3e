package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dashboardGroup := rg.Group("/dashboard", mw.Auth())
	{
		dashboardGroup.GET("/summary", h.Summary)
	}
}

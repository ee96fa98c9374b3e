package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/middleware"
)

// RegisterRoutes maps the authenticated chat endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat", mw.Auth())
	{
		chatGroup.POST("", h.Chat)
		chatGroup.GET("/history", h.History)
	}
}

// RegisterPublicRoutes maps the anonymous, rate-limited chat endpoint.
func RegisterPublicRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat/public", mw.RateLimit(), h.PublicChat)
}

// RegisterWebsocket mounts the chat websocket. Authentication is optional:
// logged-in users get the persisted pipeline, everyone else an in-memory
// session.
func RegisterWebsocket(engine *gin.Engine, h *handler, mw middleware.Middleware) {
	engine.GET("/ws/chat", mw.OptionalAuth(), h.Websocket)
}

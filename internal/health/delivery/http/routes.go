package http

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/middleware"
)

// RegisterRoutes maps the authenticated health endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	healthGroup := rg.Group("/health", mw.Auth())
	{
		healthGroup.PUT("/profile", h.UpsertProfile)
		healthGroup.GET("/profile", h.GetProfile)
		healthGroup.POST("/predict/diabetes", h.PredictDiabetes)
		healthGroup.POST("/predict/heart", h.PredictHeart)
		healthGroup.POST("/predict/pcos", h.PredictPCOS)
		healthGroup.GET("/predictions", h.ListPredictions)
		healthGroup.GET("/trends/:disease_type", h.Trends)
	}
}

// RegisterPublicRoutes maps the anonymous, rate-limited assessment endpoints.
func RegisterPublicRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	predictGroup := rg.Group("/predict", mw.RateLimit())
	{
		predictGroup.POST("/diabetes", h.AssessDiabetes)
		predictGroup.POST("/heart", h.AssessHeart)
		predictGroup.POST("/pcos", h.AssessPCOS)
	}
}

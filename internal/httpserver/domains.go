package httpserver

import (
	"context"

	agentRepo "ai-health-platform/internal/agent/repository/postgre"
	authHTTP "ai-health-platform/internal/auth/delivery/http"
	authRepo "ai-health-platform/internal/auth/repository/postgre"
	authUC "ai-health-platform/internal/auth/usecase"
	chatHTTP "ai-health-platform/internal/chat/delivery/http"
	chatRepo "ai-health-platform/internal/chat/repository/postgre"
	chatUC "ai-health-platform/internal/chat/usecase"
	dashboardHTTP "ai-health-platform/internal/dashboard/delivery/http"
	dashboardUC "ai-health-platform/internal/dashboard/usecase"
	habitHTTP "ai-health-platform/internal/habit/delivery/http"
	habitRepo "ai-health-platform/internal/habit/repository/postgre"
	habitUC "ai-health-platform/internal/habit/usecase"
	healthHTTP "ai-health-platform/internal/health/delivery/http"
	healthRepo "ai-health-platform/internal/health/repository/postgre"
	healthUC "ai-health-platform/internal/health/usecase"
	"ai-health-platform/internal/middleware"
)

// registerDomainRoutes wires every domain: repository → usecase → handler →
// routes, per domain, sharing the postgres pool and middleware.
//
// Route surface:
//   - /api/v1/...   authenticated product API
//   - /api/...      anonymous public API (rate limited)
//   - /ws/chat      websocket
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	public := srv.gin.Group("/api")

	// Repositories
	users := authRepo.New(srv.postgresDB, srv.l)
	profiles := healthRepo.New(srv.postgresDB, srv.l)
	habits := habitRepo.New(srv.postgresDB, srv.l)
	conversations := chatRepo.New(srv.postgresDB, srv.l)
	actions := agentRepo.New(srv.postgresDB, srv.l)

	// Auth
	authHandler := authHTTP.New(srv.l, authUC.New(users, srv.jwtManager, srv.l))
	authHTTP.RegisterRoutes(api, authHandler, mw)

	// Health profile + risk prediction
	healthHandler := healthHTTP.New(srv.l, healthUC.New(profiles, srv.predictors, srv.l))
	healthHTTP.RegisterRoutes(api, healthHandler, mw)
	healthHTTP.RegisterPublicRoutes(public, healthHandler, mw)

	// Habits
	habitHandler := habitHTTP.New(srv.l, habitUC.New(habits, srv.l))
	habitHTTP.RegisterRoutes(api, habitHandler, mw)

	// Chat
	chatHandler := chatHTTP.New(srv.l, chatUC.New(conversations, srv.llm, srv.sessionMemory, srv.l))
	chatHTTP.RegisterRoutes(api, chatHandler, mw)
	chatHTTP.RegisterPublicRoutes(public, chatHandler, mw)
	chatHTTP.RegisterWebsocket(srv.gin, chatHandler, mw)

	// Dashboard
	dashboardHandler := dashboardHTTP.New(srv.l, dashboardUC.New(profiles, habits, actions, srv.l))
	dashboardHTTP.RegisterRoutes(api, dashboardHandler, mw)

	srv.l.Infof(ctx, "Domain routes registered")
	return nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"ai-health-platform/config"
	_ "ai-health-platform/docs" // Swagger docs
	agentRepo "ai-health-platform/internal/agent/repository/postgre"
	agentService "ai-health-platform/internal/agent/service"
	authRepo "ai-health-platform/internal/auth/repository/postgre"
	"ai-health-platform/internal/chat"
	habitRepo "ai-health-platform/internal/habit/repository/postgre"
	"ai-health-platform/internal/health/predictor"
	healthRepo "ai-health-platform/internal/health/repository/postgre"
	"ai-health-platform/internal/httpserver"
	"ai-health-platform/pkg/llmprovider"
	"ai-health-platform/pkg/log"
	"ai-health-platform/pkg/scope"
)

// @title       AI Health Platform API
// @description Disease risk prediction, habit tracking, and an AI health companion.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Health Platform...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open postgres connection: ", err)
		return
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping postgres: ", err)
		return
	}

	// 4. JWT manager
	jwtManager, err := scope.New(scope.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  parseDuration(cfg.JWT.AccessTTL),
		RefreshTTL: parseDuration(cfg.JWT.RefreshTTL),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 5. ML predictors
	predictors, err := predictor.NewSet(cfg.Models.Dir)
	if err != nil {
		logger.Error(ctx, "Failed to load model artifacts: ", err)
		return
	}
	logger.Infof(ctx, "Model artifacts loaded from %s", cfg.Models.Dir)

	// 6. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 7. Chat session memory
	sessionMemory, err := chat.NewSessionMemory()
	if err != nil {
		logger.Error(ctx, "Failed to initialize session memory: ", err)
		return
	}

	// 8. Proactive agent
	agentSvc := agentService.New(
		cfg.Agent,
		authRepo.New(db, logger),
		habitRepo.New(db, logger),
		healthRepo.New(db, logger),
		agentRepo.New(db, logger),
		logger,
	)
	if err := agentSvc.Start(); err != nil {
		logger.Error(ctx, "Failed to start agent: ", err)
		return
	}
	defer agentSvc.Stop()
	if cfg.Agent.Enabled {
		logger.Infof(ctx, "Agent scheduled: %s", cfg.Agent.Interval)
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		AppConfig:     cfg,
		PostgresDB:    db,
		JWTManager:    jwtManager,
		Predictors:    predictors,
		LLM:           llmManager,
		SessionMemory: sessionMemory,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration tolerates empty/invalid config values; downstream defaults
// apply when it returns zero.
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

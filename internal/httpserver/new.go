package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"ai-health-platform/config"
	"ai-health-platform/internal/chat"
	"ai-health-platform/internal/health/predictor"
	"ai-health-platform/pkg/llmprovider"
	"ai-health-platform/pkg/log"
	"ai-health-platform/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Shared infrastructure
	postgresDB    *sql.DB
	jwtManager    scope.Manager
	predictors    *predictor.Set
	llm           *llmprovider.Manager
	sessionMemory *chat.SessionMemory
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	PostgresDB    *sql.DB
	JWTManager    scope.Manager
	Predictors    *predictor.Set
	LLM           *llmprovider.Manager
	SessionMemory *chat.SessionMemory
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		cfg:           cfg.AppConfig,
		postgresDB:    cfg.PostgresDB,
		jwtManager:    cfg.JWTManager,
		predictors:    cfg.Predictors,
		llm:           cfg.LLM,
		sessionMemory: cfg.SessionMemory,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.predictors == nil {
		return errors.New("predictor set is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.sessionMemory == nil {
		return errors.New("session memory is required")
	}
	return nil
}

package http

import (
	"ai-health-platform/internal/health"
	"ai-health-platform/pkg/log"
)

type handler struct {
	l  log.Logger
	uc health.UseCase
}

// New creates a new HTTP handler for the health domain.
func New(l log.Logger, uc health.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

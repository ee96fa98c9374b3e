package usecase

import (
	"ai-health-platform/internal/health/predictor"
	"ai-health-platform/internal/health/repository"
	"ai-health-platform/pkg/log"
)

// implUseCase is the private implementation of health.UseCase.
type implUseCase struct {
	repo       repository.Repository
	predictors *predictor.Set
	l          log.Logger
}

// New creates a new health UseCase implementation.
func New(repo repository.Repository, predictors *predictor.Set, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		predictors: predictors,
		l:          l,
	}
}

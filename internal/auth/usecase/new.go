package usecase

import (
	"ai-health-platform/internal/auth/repository"
	"ai-health-platform/pkg/log"
	"ai-health-platform/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
	}
}

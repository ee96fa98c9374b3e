package usecase

import (
	"time"

	"ai-health-platform/internal/habit/repository"
	"ai-health-platform/pkg/log"
)

// implUseCase is the private implementation of habit.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	now func() time.Time
}

// New creates a new habit UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}

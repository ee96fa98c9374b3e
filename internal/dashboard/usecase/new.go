package usecase

import (
	"context"
	"time"

	"ai-health-platform/internal/agent"
	"ai-health-platform/internal/habit"
	habitrepo "ai-health-platform/internal/habit/repository"
	"ai-health-platform/internal/health"
	healthrepo "ai-health-platform/internal/health/repository"
	"ai-health-platform/pkg/log"
)

type predictionSource interface {
	ListPredictions(ctx context.Context, opt healthrepo.ListPredictionsOptions) ([]health.Prediction, error)
}

type habitSource interface {
	ListHabits(ctx context.Context, opt habitrepo.ListHabitsOptions) ([]habit.Habit, error)
	CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int, error)
}

type actionSource interface {
	ListRecentActions(ctx context.Context, userID string, limit int) ([]agent.Action, error)
}

type implUseCase struct {
	predictions predictionSource
	habits      habitSource
	actions     actionSource
	l           log.Logger
	now         func() time.Time
}

func New(predictions predictionSource, habits habitSource, actions actionSource, l log.Logger) *implUseCase {
	return &implUseCase{
		predictions: predictions,
		habits:      habits,
		actions:     actions,
		l:           l,
		now:         time.Now,
	}
}

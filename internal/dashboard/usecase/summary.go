package usecase

import (
	"context"
	"math"
	"time"

	"ai-health-platform/internal/dashboard"
	habitrepo "ai-health-platform/internal/habit/repository"
	healthrepo "ai-health-platform/internal/health/repository"
	"ai-health-platform/internal/model"
)

const (
	latestPredictionCount = 3
	recentActionCount     = 5
	completionWindowDays  = 7
)

func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (dashboard.Summary, error) {
	predictions, err := uc.predictions.ListPredictions(ctx, healthrepo.ListPredictionsOptions{
		UserID: sc.UserID,
		Limit:  latestPredictionCount,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Summary ListPredictions: %v", err)
		return dashboard.Summary{}, err
	}

	habits, err := uc.habits.ListHabits(ctx, habitrepo.ListHabitsOptions{
		UserID:     sc.UserID,
		ActiveOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Summary ListHabits: %v", err)
		return dashboard.Summary{}, err
	}

	rate := 0.0
	if len(habits) > 0 {
		since := uc.now().UTC().Add(-completionWindowDays * 24 * time.Hour)
		completed, err := uc.habits.CountCompletionsSince(ctx, sc.UserID, since)
		if err != nil {
			uc.l.Errorf(ctx, "dashboard.usecase.Summary CountCompletionsSince: %v", err)
			return dashboard.Summary{}, err
		}
		rate = float64(completed) / float64(len(habits)*completionWindowDays) * 100
		rate = math.Round(rate*10) / 10
	}

	actions, err := uc.actions.ListRecentActions(ctx, sc.UserID, recentActionCount)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Summary ListRecentActions: %v", err)
		return dashboard.Summary{}, err
	}

	return dashboard.Summary{
		LatestPredictions: predictions,
		ActiveHabits:      len(habits),
		CompletionRate:    rate,
		RecentActions:     actions,
	}, nil
}

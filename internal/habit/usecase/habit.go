package usecase

import (
	"context"

	"ai-health-platform/internal/habit"
	repo "ai-health-platform/internal/habit/repository"
	"ai-health-platform/internal/model"
)

// Create adds a new habit for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input habit.CreateInput) (habit.Habit, error) {
	frequency := input.Frequency
	if frequency == "" {
		frequency = "daily"
	}
	impactLevel := input.ImpactLevel
	if impactLevel == "" {
		impactLevel = "medium"
	}

	h, err := uc.repo.CreateHabit(ctx, repo.CreateHabitOptions{
		UserID:           sc.UserID,
		Name:             input.Name,
		Description:      input.Description,
		Frequency:        frequency,
		TargetConditions: input.TargetConditions,
		ImpactLevel:      impactLevel,
		Rationale:        input.Rationale,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateHabit: %v", err)
		return habit.Habit{}, err
	}
	return h, nil
}

// List returns the caller's active habits.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]habit.Habit, error) {
	habits, err := uc.repo.ListHabits(ctx, repo.ListHabitsOptions{UserID: sc.UserID, ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListHabits: %v", err)
		return nil, err
	}
	return habits, nil
}

// Log records a completion for one of the caller's habits and updates the
// streak: consecutive-day completions extend it, a gap over one day resets
// it to 1. A non-completed log only records the entry.
func (uc *implUseCase) Log(ctx context.Context, sc model.Scope, habitID string, input habit.LogInput) (habit.LogOutput, error) {
	h, err := uc.repo.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: habitID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Log GetOneHabit: %v", err)
		return habit.LogOutput{}, err
	}
	if h.ID == "" {
		return habit.LogOutput{}, habit.ErrHabitNotFound
	}

	if _, err := uc.repo.CreateHabitLog(ctx, repo.CreateHabitLogOptions{
		HabitID:   h.ID,
		Completed: input.Completed,
		Notes:     input.Notes,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Log CreateHabitLog: %v", err)
		return habit.LogOutput{}, err
	}

	if !input.Completed {
		return habit.LogOutput{Habit: h, Streak: h.StreakCount}, nil
	}

	now := uc.now().UTC()
	streak := 1
	if h.LastCompletedAt != nil {
		daysSince := int(now.Sub(*h.LastCompletedAt).Hours() / 24)
		if daysSince <= 1 {
			streak = h.StreakCount + 1
		}
	}

	updated, err := uc.repo.UpdateHabitStats(ctx, repo.UpdateHabitStatsOptions{
		ID:               h.ID,
		StreakCount:      streak,
		TotalCompletions: h.TotalCompletions + 1,
		LastCompletedAt:  &now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Log UpdateHabitStats: %v", err)
		return habit.LogOutput{}, err
	}
	return habit.LogOutput{Habit: updated, Streak: updated.StreakCount}, nil
}

// Suggestions returns catalogue habits for one disease, or the whole
// catalogue when no disease is given.
func (uc *implUseCase) Suggestions(ctx context.Context, diseaseType string) ([]habit.Suggestion, error) {
	return habit.SuggestionsFor(diseaseType)
}

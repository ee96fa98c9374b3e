package repository

import (
	"context"
	"time"

	"ai-health-platform/internal/habit"
)

type Repository interface {
	CreateHabit(ctx context.Context, opt CreateHabitOptions) (habit.Habit, error)
	GetOneHabit(ctx context.Context, opt GetOneHabitOptions) (habit.Habit, error)
	ListHabits(ctx context.Context, opt ListHabitsOptions) ([]habit.Habit, error)
	UpdateHabitStats(ctx context.Context, opt UpdateHabitStatsOptions) (habit.Habit, error)

	CreateHabitLog(ctx context.Context, opt CreateHabitLogOptions) (habit.Log, error)
	CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int, error)
}

package repository

import "time"

// CreateHabitOptions holds parameters for inserting a new habit.
type CreateHabitOptions struct {
	UserID           string
	Name             string
	Description      *string
	Frequency        string
	TargetConditions []string
	ImpactLevel      string
	Rationale        *string
}

// GetOneHabitOptions holds filter parameters for fetching a single habit.
// All non-empty fields are applied as AND conditions.
type GetOneHabitOptions struct {
	ID     string
	UserID string
}

// ListHabitsOptions filters a user's habits.
type ListHabitsOptions struct {
	UserID     string
	ActiveOnly bool
}

// UpdateHabitStatsOptions writes the streak bookkeeping after a log entry.
type UpdateHabitStatsOptions struct {
	ID               string
	StreakCount      int
	TotalCompletions int
	LastCompletedAt  *time.Time
}

// CreateHabitLogOptions holds parameters for inserting a habit log row.
type CreateHabitLogOptions struct {
	HabitID   string
	Completed bool
	Notes     *string
}

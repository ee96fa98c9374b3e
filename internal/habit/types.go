package habit

import "time"

// Habit is a user-defined recurring health habit with streak tracking.
type Habit struct {
	ID               string
	UserID           string
	Name             string
	Description      *string
	Frequency        string // daily, weekly, custom
	TargetConditions []string
	ImpactLevel      string // low, medium, high
	Rationale        *string
	StreakCount      int
	TotalCompletions int
	LastCompletedAt  *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Log is a single completion record for a habit.
type Log struct {
	ID        string
	HabitID   string
	Completed bool
	Notes     *string
	LoggedAt  time.Time
}

// CreateInput holds the fields for creating a new habit.
type CreateInput struct {
	Name             string
	Description      *string
	Frequency        string
	TargetConditions []string
	ImpactLevel      string
	Rationale        *string
}

// LogInput records a completion (or a skipped day) for a habit.
type LogInput struct {
	Completed bool
	Notes     *string
}

// LogOutput returns the updated streak after logging.
type LogOutput struct {
	Habit  Habit
	Streak int
}

// Suggestion is a catalogue habit recommended for a disease risk.
type Suggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Impact      string `json:"impact"`
	Reason      string `json:"reason"`
}

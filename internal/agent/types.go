package agent

import "time"

// Action types produced by the proactive agent.
const (
	ActionReminder   = "reminder"
	ActionSuggestion = "suggestion"
	ActionAlert      = "alert"
)

// Action is one proactive nudge persisted for a user.
type Action struct {
	ID           string
	UserID       string
	ActionType   string
	Message      string
	Context      map[string]any
	Delivered    *time.Time
	Acknowledged *time.Time
	CreatedAt    time.Time
}

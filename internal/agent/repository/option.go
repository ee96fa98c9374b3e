package repository

// CreateActionOptions holds parameters for inserting an agent action.
type CreateActionOptions struct {
	UserID     string
	ActionType string
	Message    string
	Context    map[string]any
}

// HasActionOptions filters the dedup lookup. HabitID matches against the
// action's JSON context when set.
type HasActionOptions struct {
	UserID     string
	ActionType string
	HabitID    string
}

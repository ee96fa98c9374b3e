package habit

import (
	"context"

	"ai-health-platform/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Habit, error)
	List(ctx context.Context, sc model.Scope) ([]Habit, error)
	Log(ctx context.Context, sc model.Scope, habitID string, input LogInput) (LogOutput, error)
	Suggestions(ctx context.Context, diseaseType string) ([]Suggestion, error)
}

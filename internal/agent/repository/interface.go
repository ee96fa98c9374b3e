package repository

import (
	"context"
	"time"

	"ai-health-platform/internal/agent"
)

type Repository interface {
	CreateAction(ctx context.Context, opt CreateActionOptions) (agent.Action, error)
	ListRecentActions(ctx context.Context, userID string, limit int) ([]agent.Action, error)

	// HasActionSince reports whether a matching action already exists from
	// the given instant onward; used to deduplicate nudges per day.
	HasActionSince(ctx context.Context, opt HasActionOptions, since time.Time) (bool, error)
}

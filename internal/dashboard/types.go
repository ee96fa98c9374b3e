package dashboard

import (
	"ai-health-platform/internal/agent"
	"ai-health-platform/internal/health"
)

// Summary is the aggregated home-screen view for one user.
type Summary struct {
	LatestPredictions []health.Prediction
	ActiveHabits      int
	CompletionRate    float64 // percentage over the last 7 days, one decimal
	RecentActions     []agent.Action
}

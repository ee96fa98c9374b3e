package http

import (
	"time"

	"ai-health-platform/internal/dashboard"
)

type predictionItemResp struct {
	ID          string    `json:"id"`
	DiseaseType string    `json:"disease_type"`
	RiskScore   float64   `json:"risk_score"`
	RiskLevel   string    `json:"risk_level"`
	CreatedAt   time.Time `json:"created_at"`
}

type actionItemResp struct {
	ID         string    `json:"id"`
	ActionType string    `json:"action_type"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type summaryResp struct {
	LatestPredictions []predictionItemResp `json:"latest_predictions"`
	ActiveHabits      int                  `json:"active_habits"`
	CompletionRate    float64              `json:"completion_rate"`
	RecentActions     []actionItemResp     `json:"recent_actions"`
}

func newSummaryResp(s dashboard.Summary) summaryResp {
	predictions := make([]predictionItemResp, 0, len(s.LatestPredictions))
	for _, p := range s.LatestPredictions {
		predictions = append(predictions, predictionItemResp{
			ID:          p.ID,
			DiseaseType: p.DiseaseType,
			RiskScore:   p.RiskScore,
			RiskLevel:   p.RiskLevel,
			CreatedAt:   p.CreatedAt,
		})
	}

	actions := make([]actionItemResp, 0, len(s.RecentActions))
	for _, a := range s.RecentActions {
		actions = append(actions, actionItemResp{
			ID:         a.ID,
			ActionType: a.ActionType,
			Message:    a.Message,
			CreatedAt:  a.CreatedAt,
		})
	}

	return summaryResp{
		LatestPredictions: predictions,
		ActiveHabits:      s.ActiveHabits,
		CompletionRate:    s.CompletionRate,
		RecentActions:     actions,
	}
}

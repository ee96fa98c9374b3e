package repository

import (
	"context"

	"ai-health-platform/internal/health"
)

type Repository interface {
	UpsertProfile(ctx context.Context, opt UpsertProfileOptions) (health.Profile, error)
	GetProfile(ctx context.Context, userID string) (health.Profile, error)

	CreatePrediction(ctx context.Context, opt CreatePredictionOptions) (health.Prediction, error)
	ListPredictions(ctx context.Context, opt ListPredictionsOptions) ([]health.Prediction, error)
	GetLatestPrediction(ctx context.Context, userID string) (health.Prediction, error)
}

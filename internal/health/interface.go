package health

import (
	"context"

	"ai-health-platform/internal/health/predictor"
	"ai-health-platform/internal/model"
)

type UseCase interface {
	UpsertProfile(ctx context.Context, sc model.Scope, input UpsertProfileInput) (Profile, error)
	GetProfile(ctx context.Context, sc model.Scope) (Profile, error)

	PredictDiabetes(ctx context.Context, sc model.Scope, input predictor.DiabetesInput) (PredictOutput, error)
	PredictHeart(ctx context.Context, sc model.Scope, input predictor.HeartInput) (PredictOutput, error)
	PredictPCOS(ctx context.Context, sc model.Scope, input predictor.PCOSInput) (PredictOutput, error)

	// Assess variants score without persisting, for the anonymous endpoints.
	AssessDiabetes(ctx context.Context, input predictor.DiabetesInput) (predictor.Result, error)
	AssessHeart(ctx context.Context, input predictor.HeartInput) (predictor.Result, error)
	AssessPCOS(ctx context.Context, input predictor.PCOSInput) (predictor.Result, error)

	ListPredictions(ctx context.Context, sc model.Scope, input ListPredictionsInput) ([]Prediction, error)
	Trends(ctx context.Context, sc model.Scope, diseaseType string) (TrendsOutput, error)
}

package usecase

import (
	"context"

	"ai-health-platform/internal/health"
	"ai-health-platform/internal/health/predictor"
	repo "ai-health-platform/internal/health/repository"
	"ai-health-platform/internal/model"
)

// PredictDiabetes scores a diabetes assessment and persists it for the caller.
func (uc *implUseCase) PredictDiabetes(ctx context.Context, sc model.Scope, input predictor.DiabetesInput) (health.PredictOutput, error) {
	result, err := uc.predictors.Diabetes.Predict(input)
	if err != nil {
		return health.PredictOutput{}, err
	}
	return uc.persist(ctx, sc, result, diabetesSnapshot(input))
}

// PredictHeart scores a heart disease assessment and persists it for the caller.
func (uc *implUseCase) PredictHeart(ctx context.Context, sc model.Scope, input predictor.HeartInput) (health.PredictOutput, error) {
	result, err := uc.predictors.Heart.Predict(input)
	if err != nil {
		return health.PredictOutput{}, err
	}
	return uc.persist(ctx, sc, result, heartSnapshot(input))
}

// PredictPCOS scores a PCOS assessment and persists it for the caller.
func (uc *implUseCase) PredictPCOS(ctx context.Context, sc model.Scope, input predictor.PCOSInput) (health.PredictOutput, error) {
	result, err := uc.predictors.PCOS.Predict(input)
	if err != nil {
		return health.PredictOutput{}, err
	}
	return uc.persist(ctx, sc, result, pcosSnapshot(input))
}

// AssessDiabetes scores a diabetes assessment without persisting anything.
func (uc *implUseCase) AssessDiabetes(ctx context.Context, input predictor.DiabetesInput) (predictor.Result, error) {
	return uc.predictors.Diabetes.Predict(input)
}

// AssessHeart scores a heart disease assessment without persisting anything.
func (uc *implUseCase) AssessHeart(ctx context.Context, input predictor.HeartInput) (predictor.Result, error) {
	return uc.predictors.Heart.Predict(input)
}

// AssessPCOS scores a PCOS assessment without persisting anything.
func (uc *implUseCase) AssessPCOS(ctx context.Context, input predictor.PCOSInput) (predictor.Result, error) {
	return uc.predictors.PCOS.Predict(input)
}

// ListPredictions returns the caller's prediction history, newest first.
func (uc *implUseCase) ListPredictions(ctx context.Context, sc model.Scope, input health.ListPredictionsInput) ([]health.Prediction, error) {
	if input.DiseaseType != "" && !validDisease(input.DiseaseType) {
		return nil, health.ErrUnknownDisease
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	predictions, err := uc.repo.ListPredictions(ctx, repo.ListPredictionsOptions{
		UserID:      sc.UserID,
		DiseaseType: input.DiseaseType,
		Limit:       limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPredictions: %v", err)
		return nil, err
	}
	return predictions, nil
}

// Trends summarizes the caller's risk trajectory for one disease, oldest
// first, with the direction derived from the two most recent scores.
func (uc *implUseCase) Trends(ctx context.Context, sc model.Scope, diseaseType string) (health.TrendsOutput, error) {
	if !validDisease(diseaseType) {
		return health.TrendsOutput{}, health.ErrUnknownDisease
	}

	predictions, err := uc.repo.ListPredictions(ctx, repo.ListPredictionsOptions{
		UserID:      sc.UserID,
		DiseaseType: diseaseType,
		Ascending:   true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Trends: %v", err)
		return health.TrendsOutput{}, err
	}

	output := health.TrendsOutput{
		DiseaseType: diseaseType,
		Trend:       "insufficient_data",
		Data:        make([]health.TrendPoint, 0, len(predictions)),
	}
	for _, p := range predictions {
		output.Data = append(output.Data, health.TrendPoint{
			Date:      p.CreatedAt.Format("2006-01-02"),
			RiskScore: p.RiskScore,
			RiskLevel: p.RiskLevel,
		})
	}
	if len(predictions) == 0 {
		return output, nil
	}

	output.LatestRisk = predictions[len(predictions)-1].RiskScore
	if len(predictions) >= 2 {
		change := output.LatestRisk - predictions[len(predictions)-2].RiskScore
		switch {
		case change > 0.1:
			output.Trend = "increasing"
		case change < -0.1:
			output.Trend = "decreasing"
		default:
			output.Trend = "stable"
		}
	}
	return output, nil
}

func (uc *implUseCase) persist(ctx context.Context, sc model.Scope, result predictor.Result, snapshot map[string]any) (health.PredictOutput, error) {
	prediction, err := uc.repo.CreatePrediction(ctx, repo.CreatePredictionOptions{
		UserID:          sc.UserID,
		DiseaseType:     result.DiseaseType,
		RiskScore:       result.RiskScore,
		RiskLevel:       result.RiskLevel,
		Confidence:      result.Confidence,
		Explanation:     result.Explanation,
		InputData:       snapshot,
		Recommendations: result.Recommendations,
		ModelVersion:    result.ModelVersion,
		ShouldConsult:   result.ShouldConsult,
		OODDetected:     result.OODDetected,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.persist CreatePrediction: %v", err)
		return health.PredictOutput{}, err
	}
	return health.PredictOutput{Result: result, Prediction: &prediction}, nil
}

func validDisease(diseaseType string) bool {
	switch diseaseType {
	case health.DiseaseDiabetes, health.DiseaseHeart, health.DiseasePCOS:
		return true
	}
	return false
}

func diabetesSnapshot(input predictor.DiabetesInput) map[string]any {
	return map[string]any{
		"pregnancies":       input.Pregnancies,
		"glucose":           input.Glucose,
		"blood_pressure":    input.BloodPressure,
		"skin_thickness":    input.SkinThickness,
		"insulin":           input.Insulin,
		"bmi":               input.BMI,
		"diabetes_pedigree": input.DiabetesPedigree,
		"age":               input.Age,
	}
}

func heartSnapshot(input predictor.HeartInput) map[string]any {
	return map[string]any{
		"age": input.Age, "sex": input.Sex, "cp": input.CP,
		"trestbps": input.Trestbps, "chol": input.Chol, "fbs": input.FBS,
		"restecg": input.Restecg, "thalach": input.Thalach, "exang": input.Exang,
		"oldpeak": input.Oldpeak, "slope": input.Slope, "ca": input.CA, "thal": input.Thal,
	}
}

func pcosSnapshot(input predictor.PCOSInput) map[string]any {
	snapshot := map[string]any{
		"age":              input.Age,
		"bmi":              input.BMI,
		"weight":           input.Weight,
		"cycle_length":     input.CycleLength,
		"cycle_regularity": input.CycleRegularity,
		"weight_gain":      input.WeightGain,
		"hair_growth":      input.HairGrowth,
		"skin_darkening":   input.SkinDarkening,
		"pimples":          input.Pimples,
		"fast_food":        input.FastFood,
		"regular_exercise": input.RegularExercise,
	}
	if input.FollicleCountL != nil {
		snapshot["follicle_count_l"] = *input.FollicleCountL
	}
	if input.FollicleCountR != nil {
		snapshot["follicle_count_r"] = *input.FollicleCountR
	}
	if input.AMH != nil {
		snapshot["amh"] = *input.AMH
	}
	if input.LH != nil {
		snapshot["lh"] = *input.LH
	}
	if input.FSH != nil {
		snapshot["fsh"] = *input.FSH
	}
	return snapshot
}

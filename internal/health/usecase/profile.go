package usecase

import (
	"context"

	"ai-health-platform/internal/health"
	repo "ai-health-platform/internal/health/repository"
	"ai-health-platform/internal/model"
)

// UpsertProfile creates or partially updates the caller's health profile.
// BMI is recomputed whenever height and weight are both known after the merge.
func (uc *implUseCase) UpsertProfile(ctx context.Context, sc model.Scope, input health.UpsertProfileInput) (health.Profile, error) {
	existing, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpsertProfile GetProfile: %v", err)
		return health.Profile{}, err
	}

	height := input.HeightCM
	if height == nil {
		height = existing.HeightCM
	}
	weight := input.WeightKG
	if weight == nil {
		weight = existing.WeightKG
	}
	var bmi *float64
	if height != nil && weight != nil && *height > 0 {
		heightM := *height / 100
		v := *weight / (heightM * heightM)
		bmi = &v
	}

	profile, err := uc.repo.UpsertProfile(ctx, repo.UpsertProfileOptions{
		UserID:            sc.UserID,
		Gender:            input.Gender,
		Age:               input.Age,
		HeightCM:          input.HeightCM,
		WeightKG:          input.WeightKG,
		BMI:               bmi,
		BPSystolic:        input.BPSystolic,
		BPDiastolic:       input.BPDiastolic,
		HeartRate:         input.HeartRate,
		Glucose:           input.Glucose,
		Cholesterol:       input.Cholesterol,
		Smoking:           input.Smoking,
		Alcohol:           input.Alcohol,
		ExerciseFrequency: input.ExerciseFrequency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpsertProfile UpsertProfile: %v", err)
		return health.Profile{}, err
	}
	return profile, nil
}

// GetProfile returns the caller's health profile.
func (uc *implUseCase) GetProfile(ctx context.Context, sc model.Scope) (health.Profile, error) {
	profile, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetProfile: %v", err)
		return health.Profile{}, err
	}
	if profile.ID == "" {
		return health.Profile{}, health.ErrProfileNotFound
	}
	return profile, nil
}

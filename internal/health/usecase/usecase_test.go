package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"ai-health-platform/internal/health"
	"ai-health-platform/internal/health/predictor"
	"ai-health-platform/internal/model"
)

func newTestUseCase(t *testing.T) (*implUseCase, *mockRepository) {
	t.Helper()
	predictors, err := predictor.NewSet(t.TempDir())
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}
	repo := newMockRepository()
	return New(repo, predictors, &mockLogger{}), repo
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrS(v string) *string   { return &v }

func TestUpsertProfile(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("computes bmi from height and weight", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		profile, err := uc.UpsertProfile(ctx, sc, health.UpsertProfileInput{
			HeightCM: ptrF(170),
			WeightKG: ptrF(65),
		})
		if err != nil {
			t.Fatalf("UpsertProfile failed: %v", err)
		}
		if profile.BMI == nil {
			t.Fatal("Expected BMI to be computed")
		}
		want := 65 / (1.7 * 1.7)
		if math.Abs(*profile.BMI-want) > 1e-9 {
			t.Errorf("Expected BMI %v, got: %v", want, *profile.BMI)
		}
	})

	t.Run("recomputes bmi against stored height", func(t *testing.T) {
		uc, repo := newTestUseCase(t)

		if _, err := uc.UpsertProfile(ctx, sc, health.UpsertProfileInput{HeightCM: ptrF(180)}); err != nil {
			t.Fatalf("UpsertProfile failed: %v", err)
		}
		profile, err := uc.UpsertProfile(ctx, sc, health.UpsertProfileInput{WeightKG: ptrF(81)})
		if err != nil {
			t.Fatalf("UpsertProfile failed: %v", err)
		}
		if profile.BMI == nil {
			t.Fatal("Expected BMI from stored height and new weight")
		}
		want := 81 / (1.8 * 1.8)
		if math.Abs(*profile.BMI-want) > 1e-9 {
			t.Errorf("Expected BMI %v, got: %v", want, *profile.BMI)
		}
		if len(repo.upserted) != 2 {
			t.Errorf("Expected 2 upserts, got: %d", len(repo.upserted))
		}
	})

	t.Run("no bmi without height", func(t *testing.T) {
		uc, repo := newTestUseCase(t)

		if _, err := uc.UpsertProfile(ctx, sc, health.UpsertProfileInput{WeightKG: ptrF(70)}); err != nil {
			t.Fatalf("UpsertProfile failed: %v", err)
		}
		if repo.upserted[0].BMI != nil {
			t.Error("Expected nil BMI when height is unknown")
		}
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for missing profile", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.GetProfile(ctx, model.Scope{UserID: "nobody"})
		if !errors.Is(err, health.ErrProfileNotFound) {
			t.Errorf("Expected ErrProfileNotFound, got: %v", err)
		}
	})

	t.Run("returns existing profile", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		sc := model.Scope{UserID: "user-1"}

		if _, err := uc.UpsertProfile(ctx, sc, health.UpsertProfileInput{Gender: ptrS("female"), Age: ptrI(30)}); err != nil {
			t.Fatalf("UpsertProfile failed: %v", err)
		}

		profile, err := uc.GetProfile(ctx, sc)
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if profile.Age == nil || *profile.Age != 30 {
			t.Errorf("Expected age 30, got: %v", profile.Age)
		}
	})
}

func TestPredictDiabetes(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	input := predictor.DiabetesInput{
		Pregnancies: 2, Glucose: 140, BloodPressure: 80, SkinThickness: 25,
		Insulin: 100, BMI: 29, DiabetesPedigree: 0.4, Age: 40,
	}

	t.Run("persists the prediction with an input snapshot", func(t *testing.T) {
		uc, repo := newTestUseCase(t)

		output, err := uc.PredictDiabetes(ctx, sc, input)
		if err != nil {
			t.Fatalf("PredictDiabetes failed: %v", err)
		}
		if output.Prediction == nil {
			t.Fatal("Expected a persisted prediction")
		}
		if output.Prediction.DiseaseType != "diabetes" {
			t.Errorf("Expected disease type diabetes, got: %s", output.Prediction.DiseaseType)
		}
		if output.Prediction.UserID != "user-1" {
			t.Errorf("Expected user-1, got: %s", output.Prediction.UserID)
		}
		if len(repo.predictions) != 1 {
			t.Fatalf("Expected 1 stored prediction, got: %d", len(repo.predictions))
		}
		if got := repo.predictions[0].InputData["glucose"]; got != 140.0 {
			t.Errorf("Expected glucose snapshot 140, got: %v", got)
		}
		if output.Prediction.ModelVersion == "" {
			t.Error("Expected a model version")
		}
	})

	t.Run("invalid input is rejected before persisting", func(t *testing.T) {
		uc, repo := newTestUseCase(t)

		bad := input
		bad.Glucose = 900
		if _, err := uc.PredictDiabetes(ctx, sc, bad); !errors.Is(err, predictor.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got: %v", err)
		}
		if len(repo.predictions) != 0 {
			t.Errorf("Expected no stored predictions, got: %d", len(repo.predictions))
		}
	})
}

func TestAssessDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase(t)

	result, err := uc.AssessHeart(ctx, predictor.HeartInput{
		Age: 45, Sex: 1, CP: 1, Trestbps: 130, Chol: 220,
		Restecg: 0, Thalach: 160, Exang: 0, Oldpeak: 1, Slope: 1, Thal: 2,
	})
	if err != nil {
		t.Fatalf("AssessHeart failed: %v", err)
	}
	if result.DiseaseType != "heart_disease" {
		t.Errorf("Expected disease type heart_disease, got: %s", result.DiseaseType)
	}
	if len(repo.predictions) != 0 {
		t.Errorf("Anonymous assessment must not persist, got %d rows", len(repo.predictions))
	}
}

func TestListPredictions(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects unknown disease filter", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.ListPredictions(ctx, sc, health.ListPredictionsInput{DiseaseType: "flu"})
		if !errors.Is(err, health.ErrUnknownDisease) {
			t.Errorf("Expected ErrUnknownDisease, got: %v", err)
		}
	})

	t.Run("newest first with limit", func(t *testing.T) {
		uc, repo := newTestUseCase(t)
		for i := 0; i < 3; i++ {
			repo.predictions = append(repo.predictions, health.Prediction{
				ID: string(rune('a' + i)), UserID: "user-1", DiseaseType: health.DiseaseDiabetes,
				RiskScore: float64(i) * 0.1, CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
			})
		}

		predictions, err := uc.ListPredictions(ctx, sc, health.ListPredictionsInput{Limit: 2})
		if err != nil {
			t.Fatalf("ListPredictions failed: %v", err)
		}
		if len(predictions) != 2 {
			t.Fatalf("Expected 2 predictions, got: %d", len(predictions))
		}
		if predictions[0].ID != "c" {
			t.Errorf("Expected newest prediction first, got: %s", predictions[0].ID)
		}
	})
}

func TestTrends(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	addPrediction := func(repo *mockRepository, score float64, at time.Time) {
		repo.predictions = append(repo.predictions, health.Prediction{
			ID: "p", UserID: "user-1", DiseaseType: health.DiseaseDiabetes,
			RiskScore: score, RiskLevel: "moderate", CreatedAt: at,
		})
	}

	t.Run("rejects unknown disease", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		if _, err := uc.Trends(ctx, sc, "flu"); !errors.Is(err, health.ErrUnknownDisease) {
			t.Errorf("Expected ErrUnknownDisease, got: %v", err)
		}
	})

	t.Run("no history", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		output, err := uc.Trends(ctx, sc, health.DiseaseDiabetes)
		if err != nil {
			t.Fatalf("Trends failed: %v", err)
		}
		if output.Trend != "insufficient_data" {
			t.Errorf("Expected insufficient_data, got: %s", output.Trend)
		}
		if len(output.Data) != 0 {
			t.Errorf("Expected empty data, got: %d points", len(output.Data))
		}
	})

	t.Run("single prediction", func(t *testing.T) {
		uc, repo := newTestUseCase(t)
		addPrediction(repo, 0.4, time.Now())

		output, err := uc.Trends(ctx, sc, health.DiseaseDiabetes)
		if err != nil {
			t.Fatalf("Trends failed: %v", err)
		}
		if output.Trend != "insufficient_data" {
			t.Errorf("Expected insufficient_data, got: %s", output.Trend)
		}
		if output.LatestRisk != 0.4 {
			t.Errorf("Expected latest risk 0.4, got: %v", output.LatestRisk)
		}
	})

	t.Run("trend direction", func(t *testing.T) {
		cases := []struct {
			name     string
			scores   []float64
			expected string
		}{
			{"increasing", []float64{0.2, 0.5}, "increasing"},
			{"decreasing", []float64{0.6, 0.3}, "decreasing"},
			{"stable", []float64{0.40, 0.45}, "stable"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				uc, repo := newTestUseCase(t)
				base := time.Now().Add(-time.Hour)
				for i, s := range c.scores {
					addPrediction(repo, s, base.Add(time.Duration(i)*time.Minute))
				}

				output, err := uc.Trends(ctx, sc, health.DiseaseDiabetes)
				if err != nil {
					t.Fatalf("Trends failed: %v", err)
				}
				if output.Trend != c.expected {
					t.Errorf("Expected trend %s, got: %s", c.expected, output.Trend)
				}
				if output.LatestRisk != c.scores[len(c.scores)-1] {
					t.Errorf("Expected latest risk %v, got: %v", c.scores[len(c.scores)-1], output.LatestRisk)
				}
			})
		}
	})
}

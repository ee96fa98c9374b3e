package usecase

import (
	"context"
	"fmt"
	"time"

	"ai-health-platform/internal/health"
	repo "ai-health-platform/internal/health/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepository struct {
	profiles    map[string]health.Profile
	predictions []health.Prediction
	upserted    []repo.UpsertProfileOptions
	err         error
}

func newMockRepository() *mockRepository {
	return &mockRepository{profiles: make(map[string]health.Profile)}
}

func (m *mockRepository) UpsertProfile(ctx context.Context, opt repo.UpsertProfileOptions) (health.Profile, error) {
	if m.err != nil {
		return health.Profile{}, m.err
	}
	m.upserted = append(m.upserted, opt)

	profile, ok := m.profiles[opt.UserID]
	if !ok {
		profile = health.Profile{ID: "profile-" + opt.UserID, UserID: opt.UserID, CreatedAt: time.Now()}
	}
	if opt.Gender != nil {
		profile.Gender = opt.Gender
	}
	if opt.Age != nil {
		profile.Age = opt.Age
	}
	if opt.HeightCM != nil {
		profile.HeightCM = opt.HeightCM
	}
	if opt.WeightKG != nil {
		profile.WeightKG = opt.WeightKG
	}
	if opt.BMI != nil {
		profile.BMI = opt.BMI
	}
	if opt.BPSystolic != nil {
		profile.BPSystolic = opt.BPSystolic
	}
	if opt.BPDiastolic != nil {
		profile.BPDiastolic = opt.BPDiastolic
	}
	if opt.Glucose != nil {
		profile.Glucose = opt.Glucose
	}
	profile.UpdatedAt = time.Now()
	m.profiles[opt.UserID] = profile
	return profile, nil
}

func (m *mockRepository) GetProfile(ctx context.Context, userID string) (health.Profile, error) {
	if m.err != nil {
		return health.Profile{}, m.err
	}
	return m.profiles[userID], nil
}

func (m *mockRepository) CreatePrediction(ctx context.Context, opt repo.CreatePredictionOptions) (health.Prediction, error) {
	if m.err != nil {
		return health.Prediction{}, m.err
	}
	prediction := health.Prediction{
		ID:              fmt.Sprintf("prediction-%d", len(m.predictions)+1),
		UserID:          opt.UserID,
		DiseaseType:     opt.DiseaseType,
		RiskScore:       opt.RiskScore,
		RiskLevel:       opt.RiskLevel,
		Confidence:      opt.Confidence,
		Explanation:     opt.Explanation,
		InputData:       opt.InputData,
		Recommendations: opt.Recommendations,
		ModelVersion:    opt.ModelVersion,
		ShouldConsult:   opt.ShouldConsult,
		OODDetected:     opt.OODDetected,
		CreatedAt:       time.Now(),
	}
	m.predictions = append(m.predictions, prediction)
	return prediction, nil
}

func (m *mockRepository) ListPredictions(ctx context.Context, opt repo.ListPredictionsOptions) ([]health.Prediction, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []health.Prediction
	for _, p := range m.predictions {
		if p.UserID != opt.UserID {
			continue
		}
		if opt.DiseaseType != "" && p.DiseaseType != opt.DiseaseType {
			continue
		}
		out = append(out, p)
	}
	if !opt.Ascending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (m *mockRepository) GetLatestPrediction(ctx context.Context, userID string) (health.Prediction, error) {
	if m.err != nil {
		return health.Prediction{}, m.err
	}
	for i := len(m.predictions) - 1; i >= 0; i-- {
		if m.predictions[i].UserID == userID {
			return m.predictions[i], nil
		}
	}
	return health.Prediction{}, nil
}

package health

import (
	"time"

	"ai-health-platform/internal/health/predictor"
)

// Disease types accepted by the prediction endpoints.
const (
	DiseaseDiabetes = "diabetes"
	DiseaseHeart    = "heart_disease"
	DiseasePCOS     = "pcos"
)

// Profile is a user's health profile. One row per user; optional
// measurements stay nil until the user provides them.
type Profile struct {
	ID                string
	UserID            string
	Gender            *string
	Age               *int
	HeightCM          *float64
	WeightKG          *float64
	BMI               *float64
	BPSystolic        *int
	BPDiastolic       *int
	HeartRate         *int
	Glucose           *float64
	Cholesterol       *float64
	Smoking           *string
	Alcohol           *string
	ExerciseFrequency *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Prediction is a persisted risk assessment.
type Prediction struct {
	ID              string
	UserID          string
	DiseaseType     string
	RiskScore       float64
	RiskLevel       string
	Confidence      float64
	Explanation     string
	InputData       map[string]any
	Recommendations []string
	ModelVersion    string
	ShouldConsult   bool
	OODDetected     bool
	CreatedAt       time.Time
}

// UpsertProfileInput holds a partial profile update. Nil fields leave the
// stored value untouched.
type UpsertProfileInput struct {
	Gender            *string
	Age               *int
	HeightCM          *float64
	WeightKG          *float64
	BPSystolic        *int
	BPDiastolic       *int
	HeartRate         *int
	Glucose           *float64
	Cholesterol       *float64
	Smoking           *string
	Alcohol           *string
	ExerciseFrequency *string
}

// ListPredictionsInput filters the prediction history.
type ListPredictionsInput struct {
	DiseaseType string
	Limit       int
}

// TrendPoint is one prediction collapsed for charting.
type TrendPoint struct {
	Date      string  `json:"date"`
	RiskScore float64 `json:"risk_score"`
	RiskLevel string  `json:"risk_level"`
}

// TrendsOutput summarizes the risk trajectory for one disease.
type TrendsOutput struct {
	DiseaseType string
	Trend       string // "increasing", "decreasing", "stable", "insufficient_data"
	LatestRisk  float64
	Data        []TrendPoint
}

// PredictOutput pairs the predictor result with the persisted row (nil for
// anonymous assessments).
type PredictOutput struct {
	Result     predictor.Result
	Prediction *Prediction
}

package repository

// UpsertProfileOptions holds parameters for creating or partially updating a
// health profile. Nil pointers leave the corresponding column untouched.
type UpsertProfileOptions struct {
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
}

// CreatePredictionOptions holds parameters for inserting a prediction row.
type CreatePredictionOptions struct {
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
}

// ListPredictionsOptions filters and orders the prediction history.
type ListPredictionsOptions struct {
	UserID      string
	DiseaseType string
	Limit       int  // 0 = no limit
	Ascending   bool // default newest first
}

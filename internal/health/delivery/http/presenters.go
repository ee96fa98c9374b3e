package http

import (
	"time"

	"ai-health-platform/internal/health"
	"ai-health-platform/internal/health/predictor"
)

// --- Request DTOs ---

type upsertProfileReq struct {
	Gender            *string  `json:"gender"              binding:"omitempty,oneof=male female other"`
	Age               *int     `json:"age"                 binding:"omitempty,gte=1,lte=120"`
	HeightCM          *float64 `json:"height_cm"           binding:"omitempty,gt=0,lt=300"`
	WeightKG          *float64 `json:"weight_kg"           binding:"omitempty,gt=0,lt=500"`
	BPSystolic        *int     `json:"bp_systolic"         binding:"omitempty,gte=50,lte=300"`
	BPDiastolic       *int     `json:"bp_diastolic"        binding:"omitempty,gte=30,lte=200"`
	HeartRate         *int     `json:"heart_rate"          binding:"omitempty,gte=20,lte=250"`
	Glucose           *float64 `json:"glucose"             binding:"omitempty,gte=0"`
	Cholesterol       *float64 `json:"cholesterol"         binding:"omitempty,gte=0"`
	Smoking           *string  `json:"smoking"             binding:"omitempty,max=50"`
	Alcohol           *string  `json:"alcohol"             binding:"omitempty,max=50"`
	ExerciseFrequency *string  `json:"exercise_frequency"  binding:"omitempty,max=50"`
}

func (r upsertProfileReq) toInput() health.UpsertProfileInput {
	return health.UpsertProfileInput{
		Gender:            r.Gender,
		Age:               r.Age,
		HeightCM:          r.HeightCM,
		WeightKG:          r.WeightKG,
		BPSystolic:        r.BPSystolic,
		BPDiastolic:       r.BPDiastolic,
		HeartRate:         r.HeartRate,
		Glucose:           r.Glucose,
		Cholesterol:       r.Cholesterol,
		Smoking:           r.Smoking,
		Alcohol:           r.Alcohol,
		ExerciseFrequency: r.ExerciseFrequency,
	}
}

type diabetesPredictReq struct {
	Pregnancies      int     `json:"pregnancies"       binding:"gte=0,lte=20"`
	Glucose          float64 `json:"glucose"           binding:"required"`
	BloodPressure    float64 `json:"blood_pressure"    binding:"required"`
	SkinThickness    float64 `json:"skin_thickness"    binding:"gte=0"`
	Insulin          float64 `json:"insulin"           binding:"gte=0"`
	BMI              float64 `json:"bmi"               binding:"required"`
	DiabetesPedigree float64 `json:"diabetes_pedigree" binding:"gte=0"`
	Age              int     `json:"age"               binding:"required,gte=1,lte=120"`
}

func (r diabetesPredictReq) toInput() predictor.DiabetesInput {
	return predictor.DiabetesInput{
		Pregnancies:      r.Pregnancies,
		Glucose:          r.Glucose,
		BloodPressure:    r.BloodPressure,
		SkinThickness:    r.SkinThickness,
		Insulin:          r.Insulin,
		BMI:              r.BMI,
		DiabetesPedigree: r.DiabetesPedigree,
		Age:              r.Age,
	}
}

type heartPredictReq struct {
	Age      int     `json:"age"      binding:"required"`
	Sex      int     `json:"sex"      binding:"gte=0,lte=1"`
	CP       int     `json:"cp"       binding:"gte=0,lte=3"`
	Trestbps int     `json:"trestbps" binding:"required"`
	Chol     int     `json:"chol"     binding:"required"`
	FBS      int     `json:"fbs"      binding:"gte=0,lte=1"`
	Restecg  int     `json:"restecg"  binding:"gte=0,lte=2"`
	Thalach  int     `json:"thalach"  binding:"required"`
	Exang    int     `json:"exang"    binding:"gte=0,lte=1"`
	Oldpeak  float64 `json:"oldpeak"  binding:"gte=0,lte=6"`
	Slope    int     `json:"slope"    binding:"gte=0,lte=2"`
	CA       int     `json:"ca"       binding:"gte=0,lte=4"`
	Thal     int     `json:"thal"     binding:"gte=0,lte=3"`
}

func (r heartPredictReq) toInput() predictor.HeartInput {
	return predictor.HeartInput{
		Age: r.Age, Sex: r.Sex, CP: r.CP, Trestbps: r.Trestbps, Chol: r.Chol,
		FBS: r.FBS, Restecg: r.Restecg, Thalach: r.Thalach, Exang: r.Exang,
		Oldpeak: r.Oldpeak, Slope: r.Slope, CA: r.CA, Thal: r.Thal,
	}
}

type pcosPredictReq struct {
	Age             int      `json:"age"              binding:"required"`
	BMI             float64  `json:"bmi"              binding:"required"`
	Weight          float64  `json:"weight"           binding:"required"`
	CycleLength     int      `json:"cycle_length"     binding:"required,gte=1,lte=4"`
	CycleRegularity int      `json:"cycle_regularity" binding:"gte=0,lte=1"`
	WeightGain      int      `json:"weight_gain"      binding:"gte=0,lte=1"`
	HairGrowth      int      `json:"hair_growth"      binding:"gte=0,lte=1"`
	SkinDarkening   int      `json:"skin_darkening"   binding:"gte=0,lte=1"`
	Pimples         int      `json:"pimples"          binding:"gte=0,lte=1"`
	FastFood        int      `json:"fast_food"        binding:"gte=0,lte=1"`
	RegularExercise int      `json:"regular_exercise" binding:"gte=0,lte=1"`
	FollicleCountL  *int     `json:"follicle_count_l" binding:"omitempty,gte=0,lte=50"`
	FollicleCountR  *int     `json:"follicle_count_r" binding:"omitempty,gte=0,lte=50"`
	AMH             *float64 `json:"amh"              binding:"omitempty,gte=0"`
	LH              *float64 `json:"lh"               binding:"omitempty,gte=0"`
	FSH             *float64 `json:"fsh"              binding:"omitempty,gte=0"`
}

func (r pcosPredictReq) toInput() predictor.PCOSInput {
	return predictor.PCOSInput{
		Age:             r.Age,
		BMI:             r.BMI,
		Weight:          r.Weight,
		CycleLength:     r.CycleLength,
		CycleRegularity: r.CycleRegularity,
		WeightGain:      r.WeightGain,
		HairGrowth:      r.HairGrowth,
		SkinDarkening:   r.SkinDarkening,
		Pimples:         r.Pimples,
		FastFood:        r.FastFood,
		RegularExercise: r.RegularExercise,
		FollicleCountL:  r.FollicleCountL,
		FollicleCountR:  r.FollicleCountR,
		AMH:             r.AMH,
		LH:              r.LH,
		FSH:             r.FSH,
	}
}

type listPredictionsReq struct {
	DiseaseType string `form:"disease_type" binding:"omitempty"`
	Limit       int    `form:"limit"        binding:"omitempty,gte=1,lte=100"`
}

// --- Response DTOs ---

type profileResp struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Gender            *string   `json:"gender,omitempty"`
	Age               *int      `json:"age,omitempty"`
	HeightCM          *float64  `json:"height_cm,omitempty"`
	WeightKG          *float64  `json:"weight_kg,omitempty"`
	BMI               *float64  `json:"bmi,omitempty"`
	BPSystolic        *int      `json:"bp_systolic,omitempty"`
	BPDiastolic       *int      `json:"bp_diastolic,omitempty"`
	HeartRate         *int      `json:"heart_rate,omitempty"`
	Glucose           *float64  `json:"glucose,omitempty"`
	Cholesterol       *float64  `json:"cholesterol,omitempty"`
	Smoking           *string   `json:"smoking,omitempty"`
	Alcohol           *string   `json:"alcohol,omitempty"`
	ExerciseFrequency *string   `json:"exercise_frequency,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newProfileResp(p health.Profile) profileResp {
	return profileResp{
		ID:                p.ID,
		UserID:            p.UserID,
		Gender:            p.Gender,
		Age:               p.Age,
		HeightCM:          p.HeightCM,
		WeightKG:          p.WeightKG,
		BMI:               p.BMI,
		BPSystolic:        p.BPSystolic,
		BPDiastolic:       p.BPDiastolic,
		HeartRate:         p.HeartRate,
		Glucose:           p.Glucose,
		Cholesterol:       p.Cholesterol,
		Smoking:           p.Smoking,
		Alcohol:           p.Alcohol,
		ExerciseFrequency: p.ExerciseFrequency,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type predictionResp struct {
	ID                  string             `json:"id,omitempty"`
	DiseaseType         string             `json:"disease_type"`
	RiskScore           float64            `json:"risk_score"`
	RiskLevel           string             `json:"risk_level"`
	Confidence          float64            `json:"confidence"`
	Explanation         string             `json:"explanation"`
	ContributingFactors []predictor.Factor `json:"contributing_factors,omitempty"`
	Recommendations     []string           `json:"recommendations"`
	ShouldConsult       bool               `json:"should_consult"`
	OODDetected         bool               `json:"ood_detected"`
	ModelVersion        string             `json:"model_version"`
	CreatedAt           *time.Time         `json:"created_at,omitempty"`
}

func newPredictionResp(out health.PredictOutput) predictionResp {
	resp := newAssessmentResp(out.Result)
	if out.Prediction != nil {
		resp.ID = out.Prediction.ID
		resp.CreatedAt = &out.Prediction.CreatedAt
	}
	return resp
}

func newAssessmentResp(result predictor.Result) predictionResp {
	return predictionResp{
		DiseaseType:         result.DiseaseType,
		RiskScore:           result.RiskScore,
		RiskLevel:           result.RiskLevel,
		Confidence:          result.Confidence,
		Explanation:         result.Explanation,
		ContributingFactors: result.ContributingFactors,
		Recommendations:     result.Recommendations,
		ShouldConsult:       result.ShouldConsult,
		OODDetected:         result.OODDetected,
		ModelVersion:        result.ModelVersion,
	}
}

type historyItemResp struct {
	ID              string    `json:"id"`
	DiseaseType     string    `json:"disease_type"`
	RiskScore       float64   `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	Confidence      float64   `json:"confidence"`
	Explanation     string    `json:"explanation"`
	Recommendations []string  `json:"recommendations"`
	ShouldConsult   bool      `json:"should_consult"`
	OODDetected     bool      `json:"ood_detected"`
	ModelVersion    string    `json:"model_version"`
	CreatedAt       time.Time `json:"created_at"`
}

func newHistoryResp(predictions []health.Prediction) []historyItemResp {
	items := make([]historyItemResp, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, historyItemResp{
			ID:              p.ID,
			DiseaseType:     p.DiseaseType,
			RiskScore:       p.RiskScore,
			RiskLevel:       p.RiskLevel,
			Confidence:      p.Confidence,
			Explanation:     p.Explanation,
			Recommendations: p.Recommendations,
			ShouldConsult:   p.ShouldConsult,
			OODDetected:     p.OODDetected,
			ModelVersion:    p.ModelVersion,
			CreatedAt:       p.CreatedAt,
		})
	}
	return items
}

type trendsResp struct {
	DiseaseType string              `json:"disease_type"`
	Trend       string              `json:"trend"`
	LatestRisk  float64             `json:"latest_risk"`
	Data        []health.TrendPoint `json:"data"`
}

func newTrendsResp(out health.TrendsOutput) trendsResp {
	return trendsResp{
		DiseaseType: out.DiseaseType,
		Trend:       out.Trend,
		LatestRisk:  out.LatestRisk,
		Data:        out.Data,
	}
}

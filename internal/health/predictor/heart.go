package predictor

import (
	"ai-health-platform/pkg/mlmodel"
)

// HeartPredictor scores UCI-style heart disease inputs
type HeartPredictor struct {
	model *mlmodel.Model
}

// NewHeart loads the heart model from modelsDir or the compiled-in default
func NewHeart(modelsDir string) (*HeartPredictor, error) {
	model, err := mlmodel.LoadOrDefault(modelsDir, "heart", defaultHeartArtifact)
	if err != nil {
		return nil, err
	}
	return &HeartPredictor{model: model}, nil
}

// Validate checks the clinically accepted ranges for each feature
func (p *HeartPredictor) Validate(input HeartInput) error {
	checks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"age", float64(input.Age), 20, 100},
		{"sex", float64(input.Sex), 0, 1},
		{"cp", float64(input.CP), 0, 3},
		{"trestbps", float64(input.Trestbps), 80, 200},
		{"chol", float64(input.Chol), 100, 600},
		{"fbs", float64(input.FBS), 0, 1},
		{"restecg", float64(input.Restecg), 0, 2},
		{"thalach", float64(input.Thalach), 60, 220},
		{"exang", float64(input.Exang), 0, 1},
		{"oldpeak", input.Oldpeak, 0, 6},
		{"slope", float64(input.Slope), 0, 2},
		{"ca", float64(input.CA), 0, 4},
		{"thal", float64(input.Thal), 0, 3},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return invalidf("%s out of range (%g-%g)", c.field, c.min, c.max)
		}
	}
	return nil
}

// Predict validates the input, scores it, and assembles the full result
func (p *HeartPredictor) Predict(input HeartInput) (Result, error) {
	if err := p.Validate(input); err != nil {
		return Result{}, err
	}

	features := []float64{
		float64(input.Age), float64(input.Sex), float64(input.CP),
		float64(input.Trestbps), float64(input.Chol), float64(input.FBS),
		float64(input.Restecg), float64(input.Thalach), float64(input.Exang),
		input.Oldpeak, float64(input.Slope), float64(input.CA), float64(input.Thal),
	}

	riskScore, err := scoreModel(p.model, features)
	if err != nil {
		return Result{}, err
	}

	riskLevel := mlmodel.RiskLevel(riskScore)
	confidence := mlmodel.Confidence(riskScore)
	recommendations := p.recommendations(input, riskLevel)

	explanation := "Heart disease risk assessment based on clinical indicators. " +
		"This is a screening tool based on statistical analysis. It is NOT a diagnosis. " +
		"Please consult a cardiologist for proper evaluation."

	return Result{
		DiseaseType:     "heart_disease",
		RiskScore:       round3(riskScore),
		RiskLevel:       riskLevel,
		Confidence:      confidence,
		Explanation:     explanation,
		Recommendations: recommendations,
		ShouldConsult:   riskLevel != "low",
		ModelVersion:    p.model.Version(),
	}, nil
}

func (p *HeartPredictor) recommendations(input HeartInput, riskLevel string) []string {
	recommendations := []string{
		"Consult a cardiologist for comprehensive heart health evaluation",
	}

	if input.Trestbps > 140 {
		recommendations = append(recommendations, "Your resting blood pressure is elevated. Monitor regularly and discuss with your doctor")
	}
	if input.Chol > 240 {
		recommendations = append(recommendations, "Consider dietary changes to lower cholesterol levels")
	}
	if input.Thalach < 120 {
		recommendations = append(recommendations, "Low max heart rate during exercise. Discuss cardiac fitness with your doctor")
	}
	if input.CP > 0 {
		recommendations = append(recommendations, "Chest pain symptoms should be evaluated by a healthcare professional")
	}
	if input.Exang == 1 {
		recommendations = append(recommendations, "Exercise-induced angina indicates possible coronary issues - seek evaluation")
	}
	if riskLevel != "low" {
		recommendations = append(recommendations, "Maintain a heart-healthy diet low in saturated fats and sodium")
		recommendations = append(recommendations, "Regular moderate exercise (30 min, 5 days/week) as cleared by your doctor")
	}
	if input.FBS == 1 {
		recommendations = append(recommendations, "Elevated fasting blood sugar - consider diabetes screening")
	}

	if len(recommendations) > 6 {
		recommendations = recommendations[:6]
	}
	return recommendations
}

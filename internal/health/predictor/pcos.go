package predictor

import (
	"ai-health-platform/pkg/mlmodel"
)

// Population averages substituted for optional ultrasound/hormone features
const (
	defaultFollicleCount = 6.0
	defaultAMH           = 3.0
	defaultLH            = 8.0
	defaultFSH           = 6.0
	defaultWaistHipRatio = 0.85
)

// PCOSPredictor scores clinical PCOS screening inputs
type PCOSPredictor struct {
	model *mlmodel.Model
}

// NewPCOS loads the PCOS model from modelsDir or the compiled-in default
func NewPCOS(modelsDir string) (*PCOSPredictor, error) {
	model, err := mlmodel.LoadOrDefault(modelsDir, "pcos", defaultPCOSArtifact)
	if err != nil {
		return nil, err
	}
	return &PCOSPredictor{model: model}, nil
}

// Validate checks required fields against their accepted ranges
func (p *PCOSPredictor) Validate(input PCOSInput) error {
	checks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"age", float64(input.Age), 15, 50},
		{"bmi", input.BMI, 15, 50},
		{"weight", input.Weight, 30, 150},
		{"cycle_length", float64(input.CycleLength), 1, 4},
		{"cycle_regularity", float64(input.CycleRegularity), 0, 1},
		{"weight_gain", float64(input.WeightGain), 0, 1},
		{"hair_growth", float64(input.HairGrowth), 0, 1},
		{"skin_darkening", float64(input.SkinDarkening), 0, 1},
		{"pimples", float64(input.Pimples), 0, 1},
		{"fast_food", float64(input.FastFood), 0, 1},
		{"regular_exercise", float64(input.RegularExercise), 0, 1},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return invalidf("%s out of range (%g-%g)", c.field, c.min, c.max)
		}
	}
	return nil
}

// Predict validates the input, scores it, and assembles the full result
func (p *PCOSPredictor) Predict(input PCOSInput) (Result, error) {
	if err := p.Validate(input); err != nil {
		return Result{}, err
	}

	riskScore, err := scoreModel(p.model, p.prepareFeatures(input))
	if err != nil {
		return Result{}, err
	}

	riskLevel := mlmodel.RiskLevel(riskScore)
	confidence := mlmodel.Confidence(riskScore)

	explanation := "PCOS risk assessment based on clinical indicators. " +
		"This is a screening tool based on statistical analysis. It is NOT a diagnosis. " +
		"Please consult a gynecologist for proper evaluation."

	return Result{
		DiseaseType:     "pcos",
		RiskScore:       round3(riskScore),
		RiskLevel:       riskLevel,
		Confidence:      confidence,
		Explanation:     explanation,
		Recommendations: p.recommendations(input, riskLevel),
		ShouldConsult:   riskLevel != "low",
		ModelVersion:    p.model.Version(),
	}, nil
}

func (p *PCOSPredictor) prepareFeatures(input PCOSInput) []float64 {
	follicleL := defaultFollicleCount
	if input.FollicleCountL != nil {
		follicleL = float64(*input.FollicleCountL)
	}
	follicleR := defaultFollicleCount
	if input.FollicleCountR != nil {
		follicleR = float64(*input.FollicleCountR)
	}
	amh := defaultAMH
	if input.AMH != nil {
		amh = *input.AMH
	}
	lh := defaultLH
	if input.LH != nil {
		lh = *input.LH
	}
	fsh := defaultFSH
	if input.FSH != nil {
		fsh = *input.FSH
	}

	return []float64{
		float64(input.Age), input.BMI, input.Weight,
		float64(input.CycleLength), float64(input.CycleRegularity),
		float64(input.WeightGain), float64(input.HairGrowth),
		float64(input.SkinDarkening), float64(input.Pimples),
		float64(input.FastFood), float64(input.RegularExercise),
		follicleL, follicleR, amh, lh, fsh,
		fsh / lh, defaultWaistHipRatio,
	}
}

func (p *PCOSPredictor) recommendations(input PCOSInput, riskLevel string) []string {
	recommendations := []string{
		"Consult a gynecologist for comprehensive PCOS evaluation",
	}

	if input.BMI > 25 {
		recommendations = append(recommendations, "Weight management through balanced diet and exercise may help improve symptoms")
	}
	if input.CycleLength >= 3 {
		recommendations = append(recommendations, "Track your menstrual cycles and discuss irregularities with your doctor")
	}
	if input.FastFood == 1 {
		recommendations = append(recommendations, "Consider reducing processed foods and adopting a low-glycemic diet")
	}
	if input.RegularExercise == 0 {
		recommendations = append(recommendations, "Regular physical activity (30 min/day) can help manage PCOS symptoms")
	}
	if input.HairGrowth == 1 || input.Pimples == 1 {
		recommendations = append(recommendations, "Discuss hormonal treatments with your doctor for skin/hair symptoms")
	}
	if riskLevel == "high" {
		recommendations = append(recommendations, "Consider getting hormonal tests (LH, FSH, AMH, testosterone)")
		recommendations = append(recommendations, "Ultrasound examination may help confirm diagnosis")
	}

	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

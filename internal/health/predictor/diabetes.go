package predictor

import (
	"fmt"
	"math"
	"strings"

	"ai-health-platform/pkg/mlmodel"
)

// DiabetesPredictor scores PIMA-style screening inputs
type DiabetesPredictor struct {
	model *mlmodel.Model
}

// NewDiabetes loads the diabetes model from modelsDir or the compiled-in default
func NewDiabetes(modelsDir string) (*DiabetesPredictor, error) {
	model, err := mlmodel.LoadOrDefault(modelsDir, "diabetes", defaultDiabetesArtifact)
	if err != nil {
		return nil, err
	}
	return &DiabetesPredictor{model: model}, nil
}

type diabetesRange struct {
	field    string
	min, max float64
}

var diabetesRanges = []diabetesRange{
	{"pregnancies", 0, 20},
	{"glucose", 40, 400},
	{"blood_pressure", 40, 200},
	{"skin_thickness", 0, 100},
	{"insulin", 0, 1000},
	{"bmi", 10, 60},
	{"diabetes_pedigree", 0, 3},
	{"age", 18, 120},
}

// Validate checks every feature against its accepted clinical range
func (p *DiabetesPredictor) Validate(input DiabetesInput) error {
	values := []float64{
		float64(input.Pregnancies), input.Glucose, input.BloodPressure,
		input.SkinThickness, input.Insulin, input.BMI,
		input.DiabetesPedigree, float64(input.Age),
	}
	for i, r := range diabetesRanges {
		if values[i] < r.min || values[i] > r.max {
			return invalidf("%s out of range (%g-%g)", r.field, r.min, r.max)
		}
	}
	return nil
}

// Predict validates the input, scores it, and assembles the full result
func (p *DiabetesPredictor) Predict(input DiabetesInput) (Result, error) {
	if err := p.Validate(input); err != nil {
		return Result{}, err
	}

	ood := p.model.DetectOOD(map[string]float64{
		"Pregnancies":              float64(input.Pregnancies),
		"Glucose":                  input.Glucose,
		"BloodPressure":            input.BloodPressure,
		"SkinThickness":            input.SkinThickness,
		"Insulin":                  input.Insulin,
		"BMI":                      input.BMI,
		"DiabetesPedigreeFunction": input.DiabetesPedigree,
		"Age":                      float64(input.Age),
	})

	riskScore, err := scoreModel(p.model, p.prepareFeatures(input))
	if err != nil {
		return Result{}, err
	}

	riskLevel := mlmodel.RiskLevel(riskScore)
	confidence := mlmodel.Confidence(riskScore)
	explanation, factors := p.explain(input, riskScore, riskLevel)

	return Result{
		DiseaseType:         "diabetes",
		RiskScore:           round3(riskScore),
		RiskLevel:           riskLevel,
		Confidence:          confidence,
		Explanation:         explanation,
		ContributingFactors: factors,
		Recommendations:     p.recommendations(input, riskLevel),
		ShouldConsult:       mlmodel.ShouldConsult(riskScore, confidence, ood),
		OODDetected:         ood,
		ModelVersion:        p.model.Version(),
	}, nil
}

// prepareFeatures builds the model feature vector, including the engineered
// bucket and interaction features used during training.
func (p *DiabetesPredictor) prepareFeatures(input DiabetesInput) []float64 {
	age := float64(input.Age)
	bmi := input.BMI
	glucose := input.Glucose

	var ageGroup float64
	switch {
	case age <= 30:
		ageGroup = 0
	case age <= 45:
		ageGroup = 1
	case age <= 60:
		ageGroup = 2
	default:
		ageGroup = 3
	}

	var bmiCat float64
	switch {
	case bmi < 18.5:
		bmiCat = 0
	case bmi < 25:
		bmiCat = 1
	case bmi < 30:
		bmiCat = 2
	default:
		bmiCat = 3
	}

	var glucoseCat float64
	switch {
	case glucose < 100:
		glucoseCat = 0
	case glucose < 125:
		glucoseCat = 1
	default:
		glucoseCat = 2
	}

	return []float64{
		float64(input.Pregnancies), glucose, input.BloodPressure,
		input.SkinThickness, input.Insulin, bmi,
		input.DiabetesPedigree, age,
		ageGroup, bmiCat, glucoseCat,
		bmi * age, glucose * bmi,
	}
}

func (p *DiabetesPredictor) explain(input DiabetesInput, riskScore float64, riskLevel string) (string, []Factor) {
	var factors []Factor

	switch {
	case input.BMI >= 30:
		factors = append(factors, Factor{
			Name: "BMI", Value: input.BMI, Impact: "high", Modifiable: true,
			Description: fmt.Sprintf("BMI of %.1f is in the obese range (>=30)", input.BMI),
		})
	case input.BMI >= 25:
		factors = append(factors, Factor{
			Name: "BMI", Value: input.BMI, Impact: "medium", Modifiable: true,
			Description: fmt.Sprintf("BMI of %.1f is in the overweight range (25-30)", input.BMI),
		})
	}

	switch {
	case input.Glucose >= 126:
		factors = append(factors, Factor{
			Name: "Glucose", Value: input.Glucose, Impact: "high", Modifiable: true,
			Description: fmt.Sprintf("Fasting glucose of %g mg/dL is in diabetic range (>=126)", input.Glucose),
		})
	case input.Glucose >= 100:
		factors = append(factors, Factor{
			Name: "Glucose", Value: input.Glucose, Impact: "medium", Modifiable: true,
			Description: fmt.Sprintf("Fasting glucose of %g mg/dL is in prediabetic range (100-125)", input.Glucose),
		})
	}

	if input.Age >= 45 {
		factors = append(factors, Factor{
			Name: "Age", Value: float64(input.Age), Impact: "medium", Modifiable: false,
			Description: fmt.Sprintf("Age %d increases diabetes risk", input.Age),
		})
	}

	if input.BloodPressure >= 140 {
		factors = append(factors, Factor{
			Name: "Blood Pressure", Value: input.BloodPressure, Impact: "medium", Modifiable: true,
			Description: fmt.Sprintf("Blood pressure of %g mmHg is elevated (>=140)", input.BloodPressure),
		})
	}

	if input.DiabetesPedigree > 0.5 {
		factors = append(factors, Factor{
			Name: "Family History", Value: input.DiabetesPedigree, Impact: "medium", Modifiable: false,
			Description: "Strong family history of diabetes",
		})
	}

	var b strings.Builder
	switch riskLevel {
	case "low":
		fmt.Fprintf(&b, "Your diabetes risk is LOW (%.1f%%). ", riskScore*100)
		b.WriteString("Your current health metrics are within healthy ranges. ")
		b.WriteString("Continue maintaining a healthy lifestyle with regular exercise and balanced diet.")
	case "moderate":
		fmt.Fprintf(&b, "Your diabetes risk is MODERATE (%.1f%%). ", riskScore*100)
		if len(factors) > 0 {
			fmt.Fprintf(&b, "Key factors: %s. ", factorNames(factors, 2))
		}
		b.WriteString("Consider lifestyle changes such as weight management, regular exercise (150 min/week), ")
		b.WriteString("and monitoring blood glucose levels. Consult a healthcare provider for personalized advice.")
	default:
		fmt.Fprintf(&b, "Your diabetes risk is HIGH (%.1f%%). ", riskScore*100)
		if len(factors) > 0 {
			fmt.Fprintf(&b, "Significant factors: %s. ", factorNames(factors, 3))
		}
		b.WriteString("We strongly recommend consulting a healthcare professional for proper screening and personalized guidance. ")
		b.WriteString("Early intervention can prevent or delay diabetes onset.")
	}
	b.WriteString(" This is a risk assessment, not a medical diagnosis.")

	return b.String(), factors
}

func (p *DiabetesPredictor) recommendations(input DiabetesInput, riskLevel string) []string {
	var recs []string
	if input.Glucose > 140 {
		recs = append(recs, "Your glucose level is elevated. Consider monitoring more frequently.")
	}
	if input.BMI >= 25 {
		recs = append(recs, "Weight management through diet and exercise can lower diabetes risk.")
	}
	if riskLevel != "low" {
		recs = append(recs, "Schedule a fasting glucose or HbA1c test with your doctor.")
		recs = append(recs, "Aim for 150 minutes of moderate exercise per week.")
	}
	recs = append(recs, "Maintain a balanced diet rich in fiber and low in refined sugar.")
	return recs
}

func factorNames(factors []Factor, limit int) string {
	if len(factors) > limit {
		factors = factors[:limit]
	}
	names := make([]string, 0, len(factors))
	for _, f := range factors {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

package predictor

import "ai-health-platform/pkg/mlmodel"

// Compiled-in model artifacts, exported from the training pipeline. A JSON
// file with the same name in the models directory takes precedence.

var defaultDiabetesArtifact = mlmodel.Artifact{
	Name:    "diabetes",
	Version: "1.2.0",
	Features: []string{
		"Pregnancies", "Glucose", "BloodPressure", "SkinThickness",
		"Insulin", "BMI", "DiabetesPedigreeFunction", "Age",
		"AgeGroup", "BMICategory", "GlucoseCategory", "BMIxAge", "GlucosexBMI",
	},
	Coefficients: []float64{
		0.25, 1.10, 0.05, 0.05,
		0.10, 0.65, 0.30, 0.35,
		0.20, 0.25, 0.45, 0.15, 0.35,
	},
	Intercept:  -0.85,
	ScalerMean: []float64{3.85, 120.9, 69.1, 20.5, 79.8, 32.0, 0.47, 33.2, 0.92, 2.42, 0.91, 1071.0, 3894.0},
	ScalerStd:  []float64{3.37, 32.0, 19.4, 16.0, 115.2, 7.9, 0.33, 11.8, 0.95, 0.80, 0.85, 483.0, 1452.0},
	TrainingStats: map[string]mlmodel.FeatureStats{
		"Pregnancies":              {Mean: 3.85, Std: 3.37},
		"Glucose":                  {Mean: 120.9, Std: 32.0},
		"BloodPressure":            {Mean: 69.1, Std: 19.4},
		"SkinThickness":            {Mean: 20.5, Std: 16.0},
		"Insulin":                  {Mean: 79.8, Std: 115.2},
		"BMI":                      {Mean: 32.0, Std: 7.9},
		"DiabetesPedigreeFunction": {Mean: 0.47, Std: 0.33},
		"Age":                      {Mean: 33.2, Std: 11.8},
	},
}

var defaultHeartArtifact = mlmodel.Artifact{
	Name:    "heart",
	Version: "1.1.0",
	Features: []string{
		"age", "sex", "cp", "trestbps", "chol", "fbs",
		"restecg", "thalach", "exang", "oldpeak", "slope", "ca", "thal",
	},
	Coefficients: []float64{
		0.25, 0.55, 0.85, 0.20, 0.15, 0.05,
		0.10, -0.70, 0.60, 0.75, 0.40, 0.95, 0.80,
	},
	Intercept:  -0.15,
	ScalerMean: []float64{54.4, 0.68, 0.97, 131.6, 246.3, 0.15, 0.53, 149.6, 0.33, 1.04, 1.40, 0.73, 2.31},
	ScalerStd:  []float64{9.0, 0.47, 1.03, 17.5, 51.8, 0.36, 0.53, 22.9, 0.47, 1.16, 0.62, 1.02, 0.61},
}

var defaultPCOSArtifact = mlmodel.Artifact{
	Name:    "pcos",
	Version: "1.0.0",
	Features: []string{
		"Age", "BMI", "Weight", "Cycle_length", "Cycle_RI",
		"Weight_gain", "Hair_growth", "Skin_darkening", "Pimples",
		"Fast_food", "Regular_Exercise", "Follicle_L", "Follicle_R",
		"AMH", "LH", "FSH", "FSH_LH", "Waist_Hip_Ratio",
	},
	Coefficients: []float64{
		-0.15, 0.35, 0.15, 0.55, 0.40,
		0.55, 0.70, 0.65, 0.35,
		0.40, -0.30, 0.85, 0.90,
		0.45, 0.20, -0.10, -0.15, 0.25,
	},
	Intercept:  -1.0,
	ScalerMean: []float64{31.4, 24.3, 59.6, 2.2, 0.40, 0.41, 0.28, 0.33, 0.49, 0.51, 0.25, 6.1, 6.6, 5.6, 6.5, 6.2, 1.3, 0.86},
	ScalerStd:  []float64{5.4, 4.1, 11.0, 0.9, 0.49, 0.49, 0.45, 0.47, 0.50, 0.50, 0.43, 4.2, 4.4, 4.6, 6.0, 3.5, 1.5, 0.05},
}

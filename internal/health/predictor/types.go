package predictor

// Factor is a single input driving the risk score up
type Factor struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Impact      string  `json:"impact"` // "high", "medium", "low"
	Modifiable  bool    `json:"modifiable"`
	Description string  `json:"description"`
}

// Result is the standardized prediction output shared by all predictors
type Result struct {
	DiseaseType         string
	RiskScore           float64
	RiskLevel           string
	Confidence          float64
	Explanation         string
	ContributingFactors []Factor
	Recommendations     []string
	ShouldConsult       bool
	OODDetected         bool
	ModelVersion        string
}

// DiabetesInput holds the PIMA-style diabetes screening features
type DiabetesInput struct {
	Pregnancies      int
	Glucose          float64
	BloodPressure    float64
	SkinThickness    float64
	Insulin          float64
	BMI              float64
	DiabetesPedigree float64
	Age              int
}

// HeartInput holds the UCI heart disease features
type HeartInput struct {
	Age      int
	Sex      int // 0=female, 1=male
	CP       int // chest pain type 0-3
	Trestbps int // resting blood pressure (mm Hg)
	Chol     int // serum cholesterol (mg/dl)
	FBS      int // fasting blood sugar > 120 mg/dl
	Restecg  int // resting ECG result 0-2
	Thalach  int // maximum heart rate achieved
	Exang    int // exercise induced angina
	Oldpeak  float64
	Slope    int
	CA       int
	Thal     int
}

// PCOSInput holds clinical PCOS screening features. Ultrasound and hormone
// values are optional; population averages are substituted when absent.
type PCOSInput struct {
	Age             int
	BMI             float64
	Weight          float64
	CycleLength     int // 1=regular .. 4=very irregular/absent
	CycleRegularity int
	WeightGain      int
	HairGrowth      int
	SkinDarkening   int
	Pimples         int
	FastFood        int
	RegularExercise int
	FollicleCountL  *int
	FollicleCountR  *int
	AMH             *float64
	LH              *float64
	FSH             *float64
}

package habit

// diseaseCatalogue maps disease types to habits worth recommending when the
// user carries an elevated risk for that disease.
var diseaseCatalogue = map[string][]Suggestion{
	"diabetes": {
		{
			Name:        "30-min Daily Exercise",
			Description: "Walking, jogging, or any cardio activity",
			Frequency:   "daily",
			Impact:      "high",
			Reason:      "Improves insulin sensitivity and glucose metabolism",
		},
		{
			Name:        "Blood Glucose Monitoring",
			Description: "Check blood sugar levels",
			Frequency:   "daily",
			Impact:      "high",
			Reason:      "Early detection of fluctuations",
		},
		{
			Name:        "Low-Carb Meals",
			Description: "Focus on vegetables, lean protein, healthy fats",
			Frequency:   "daily",
			Impact:      "high",
			Reason:      "Reduces blood sugar spikes",
		},
		{
			Name:        "Adequate Sleep (7-8 hours)",
			Description: "Consistent sleep schedule",
			Frequency:   "daily",
			Impact:      "medium",
			Reason:      "Poor sleep affects insulin resistance",
		},
	},
	"heart_disease": {
		{
			Name:        "Cardio Exercise",
			Description: "Swimming, cycling, brisk walking",
			Frequency:   "daily",
			Impact:      "high",
			Reason:      "Strengthens heart muscle and improves circulation",
		},
		{
			Name:        "Mediterranean Diet",
			Description: "Fish, olive oil, nuts, whole grains",
			Frequency:   "daily",
			Impact:      "high",
			Reason:      "Reduces cholesterol and inflammation",
		},
		{
			Name:        "Stress Management",
			Description: "Meditation, yoga, deep breathing",
			Frequency:   "daily",
			Impact:      "medium",
			Reason:      "Reduces blood pressure and heart strain",
		},
		{
			Name:        "Blood Pressure Monitoring",
			Description: "Regular BP checks",
			Frequency:   "weekly",
			Impact:      "high",
			Reason:      "Early detection of hypertension",
		},
	},
	"pcos": {
		{
			Name:        "Regular Exercise",
			Description: "Mix of cardio and strength training",
			Frequency:   "5x per week",
			Impact:      "high",
			Reason:      "Improves insulin sensitivity and hormone balance",
		},
		{
			Name:        "Low-GI Diet",
			Description: "Complex carbs, high fiber",
			Frequency:   "daily",
			Impact:      "high",
			Reason:      "Stabilizes insulin and reduces inflammation",
		},
		{
			Name:        "Weight Management",
			Description: "Track weight weekly",
			Frequency:   "weekly",
			Impact:      "high",
			Reason:      "5-10% weight loss can restore ovulation",
		},
		{
			Name:        "Stress Reduction",
			Description: "Mindfulness, adequate sleep",
			Frequency:   "daily",
			Impact:      "medium",
			Reason:      "High cortisol worsens PCOS symptoms",
		},
	},
}

// catalogueOrder keeps the all-diseases listing deterministic.
var catalogueOrder = []string{"diabetes", "heart_disease", "pcos"}

// SuggestionsFor returns the catalogue for one disease, or every disease's
// suggestions in a stable order when diseaseType is empty.
func SuggestionsFor(diseaseType string) ([]Suggestion, error) {
	if diseaseType != "" {
		suggestions, ok := diseaseCatalogue[diseaseType]
		if !ok {
			return nil, ErrUnknownDisease
		}
		return suggestions, nil
	}

	var all []Suggestion
	for _, disease := range catalogueOrder {
		all = append(all, diseaseCatalogue[disease]...)
	}
	return all, nil
}

package intent

// Intent is a discrete topical category for a user's health message.
// The enumeration is fixed at compile time and never extended at runtime.
type Intent string

const (
	IntentCrisis           Intent = "crisis"
	IntentMentalHealth     Intent = "mental_health"
	IntentSleepFatigue     Intent = "sleep_fatigue"
	IntentNutritionDiet    Intent = "nutrition_diet"
	IntentFitnessExercise  Intent = "fitness_exercise"
	IntentPhysicalSymptoms Intent = "physical_symptoms"
	IntentDiabetesRelated  Intent = "diabetes_related"
	IntentHeartRelated     Intent = "heart_related"
	IntentPCOSRelated      Intent = "pcos_related"
	IntentGreeting         Intent = "greeting"
	IntentGeneralHealth    Intent = "general_health"
	IntentUnknown          Intent = "unknown"
)

// Result is a single classification outcome
type Result struct {
	Intent     Intent
	Confidence float64
}

// Turn is one prior conversation message, most-recent-last in a history slice
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// String implements fmt.Stringer
func (i Intent) String() string {
	return string(i)
}

package intent

// crisisKeywords are matched as raw substrings before any scoring so that
// crisis handling can never be outscored by coincidental keyword density.
var crisisKeywords = []string{
	"suicide", "kill myself", "end my life", "want to die", "self harm",
	"hurt myself", "no reason to live", "better off dead",
}

// scoringOrder fixes the iteration order for scoring and tie-breaking.
// When two intents tie for the highest score, the one listed first wins.
var scoringOrder = []Intent{
	IntentMentalHealth,
	IntentSleepFatigue,
	IntentNutritionDiet,
	IntentFitnessExercise,
	IntentPhysicalSymptoms,
	IntentDiabetesRelated,
	IntentHeartRelated,
	IntentPCOSRelated,
	IntentGreeting,
}

var intentKeywords = map[Intent][]string{
	IntentMentalHealth: {
		"anxious", "anxiety", "depressed", "depression", "sad", "stressed",
		"stress", "worried", "panic", "lonely", "hopeless", "overwhelmed",
		"mental", "therapy", "therapist", "feeling down", "unmotivated",
		"mood", "emotional", "cry", "crying", "scared", "fear",
	},
	IntentSleepFatigue: {
		"sleep", "sleepy", "tired", "fatigue", "exhausted", "insomnia",
		"can't sleep", "wake up", "drowsy", "energy", "rest", "nap",
		"sleeping", "oversleep", "restless",
	},
	IntentNutritionDiet: {
		"diet", "food", "eat", "eating", "nutrition", "weight loss",
		"lose weight", "gain weight", "calories", "protein", "carbs",
		"healthy food", "meal", "breakfast", "lunch", "dinner", "snack",
		"vegetarian", "vegan", "fasting", "vitamin", "supplement",
	},
	IntentFitnessExercise: {
		"gym", "exercise", "workout", "fitness", "muscle", "cardio",
		"running", "jogging", "yoga", "strength", "training", "sports",
		"physical activity", "walk", "swimming", "cycling", "abs",
	},
	IntentPhysicalSymptoms: {
		"pain", "headache", "stomach", "fever", "cough", "cold", "flu",
		"nausea", "vomit", "diarrhea", "constipation", "rash", "itch",
		"swelling", "dizzy", "dizziness", "chest pain", "breathing",
		"sore throat", "infection", "hurt", "ache", "symptom",
	},
	IntentDiabetesRelated: {
		"diabetes", "blood sugar", "glucose", "insulin", "diabetic",
		"sugar level", "hba1c", "prediabetes", "type 2", "type 1",
	},
	IntentHeartRelated: {
		"heart", "cardiac", "blood pressure", "bp", "cholesterol",
		"palpitation", "cardiovascular", "pulse", "heartbeat",
	},
	IntentPCOSRelated: {
		"pcos", "polycystic", "ovary", "period", "menstrual", "irregular cycle",
		"hormonal", "fertility", "acne", "facial hair", "hirsutism",
	},
	IntentGreeting: {
		"hello", "hi", "hey", "good morning", "good evening", "how are you",
		"what can you do", "help me",
	},
}

// greetingFallbacks cover short openers that carry no scoring keyword
var greetingFallbacks = []string{
	"help", "thanks", "thank you", "good afternoon", "good night",
}

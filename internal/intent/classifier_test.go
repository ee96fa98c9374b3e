package intent

import (
	"math"
	"strings"
	"testing"
)

func TestClassify_CrisisOverride(t *testing.T) {
	cases := []struct {
		name    string
		message string
	}{
		{"direct statement", "I want to kill myself"},
		{"buried in other keywords", "I feel anxious and tired and want to end my life"},
		{"mixed case", "I think about SUICIDE sometimes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.message, nil)
			if result.Intent != IntentCrisis {
				t.Errorf("Expected crisis, got: %s", result.Intent)
			}
			if result.Confidence != 1.0 {
				t.Errorf("Expected confidence 1.0, got: %v", result.Confidence)
			}
		})
	}
}

func TestClassify_EmptyMessage(t *testing.T) {
	for _, msg := range []string{"", "   ", "\t\n"} {
		result := Classify(msg, nil)
		if result.Intent != IntentUnknown {
			t.Errorf("Classify(%q): expected unknown, got: %s", msg, result.Intent)
		}
		if result.Confidence != 0.0 {
			t.Errorf("Classify(%q): expected confidence 0.0, got: %v", msg, result.Confidence)
		}
	}
}

func TestClassify_TopKeywordPerIntent(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"I've been feeling so depressed", IntentMentalHealth},
		{"I have insomnia", IntentSleepFatigue},
		{"what calories should I aim for", IntentNutritionDiet},
		{"just joined a gym", IntentFitnessExercise},
		{"I have a bad headache", IntentPhysicalSymptoms},
		{"is this prediabetes", IntentDiabetesRelated},
		{"my cholesterol is high", IntentHeartRelated},
		{"was told I might have pcos", IntentPCOSRelated},
		{"hello", IntentGreeting},
	}

	for _, tc := range cases {
		t.Run(string(tc.want), func(t *testing.T) {
			result := Classify(tc.message, nil)
			if result.Intent != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.message, result.Intent, tc.want)
			}
			if result.Confidence <= 0 {
				t.Errorf("Classify(%q): expected positive confidence, got: %v", tc.message, result.Confidence)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	message := "I've been feeling very anxious lately and having trouble sleeping"
	history := []Turn{
		{Role: "user", Content: "I can't sleep at night"},
		{Role: "assistant", Content: "How many hours do you usually sleep?"},
	}

	first := Classify(message, history)
	for i := 0; i < 10; i++ {
		if got := Classify(message, history); got != first {
			t.Fatalf("Run %d differed: %+v vs %+v", i, got, first)
		}
	}

	if first.Intent != IntentMentalHealth && first.Intent != IntentSleepFatigue {
		t.Errorf("Expected a mental health or sleep intent, got: %s", first.Intent)
	}
}

func TestClassify_TieBreakIsStable(t *testing.T) {
	// "anxious" scores mental_health, "sleeping" scores sleep_fatigue; the
	// tie resolves to whichever comes first in scoringOrder
	message := "anxious and sleeping badly"
	for i := 0; i < 5; i++ {
		result := Classify(message, nil)
		if result.Intent != IntentMentalHealth {
			t.Fatalf("Run %d: expected mental_health on tie, got: %s", i, result.Intent)
		}
	}
}

func TestClassify_ConfidenceMonotonic(t *testing.T) {
	one := Classify("I'm tired", nil)
	three := Classify("I'm tired and exhausted with insomnia", nil)

	if three.Confidence < one.Confidence {
		t.Errorf("More keyword matches lowered confidence: %v < %v", three.Confidence, one.Confidence)
	}
	if math.Abs(three.Confidence-1.0) > 1e-9 {
		t.Errorf("Three matches should saturate confidence at 1.0, got: %v", three.Confidence)
	}
}

func TestClassify_ZeroScoreFallbacks(t *testing.T) {
	t.Run("greeting heuristic", func(t *testing.T) {
		result := Classify("help", nil)
		if result.Intent != IntentGreeting {
			t.Errorf("Expected greeting, got: %s", result.Intent)
		}
	})

	t.Run("no keywords without history", func(t *testing.T) {
		result := Classify("what do you think about that", nil)
		if result.Intent != IntentUnknown {
			t.Errorf("Expected unknown, got: %s", result.Intent)
		}
		if result.Confidence != 0.3 {
			t.Errorf("Expected confidence 0.3, got: %v", result.Confidence)
		}
	})

	t.Run("ongoing conversation stays general", func(t *testing.T) {
		history := []Turn{
			{Role: "user", Content: "how do I lower my blood pressure"},
			{Role: "assistant", Content: "Regular exercise and less sodium help."},
		}
		result := Classify("anything else I should know", history)
		if result.Intent != IntentGeneralHealth {
			t.Errorf("Expected general_health, got: %s", result.Intent)
		}
		if result.Confidence != 0.5 {
			t.Errorf("Expected confidence 0.5, got: %v", result.Confidence)
		}
	})
}

func TestClassify_HistoryDisambiguation(t *testing.T) {
	// "meal" and "sugar level" tie at one match each; the prior diabetes
	// turn breaks the tie toward diabetes_related
	history := []Turn{
		{Role: "user", Content: "I was diagnosed with diabetes last year"},
		{Role: "assistant", Content: "Thanks for sharing. How is your management going?"},
	}

	withHistory := Classify("my sugar level feels off after a meal", history)
	if withHistory.Intent != IntentDiabetesRelated {
		t.Errorf("Expected diabetes_related with history, got: %s", withHistory.Intent)
	}

	withoutHistory := Classify("my sugar level feels off after a meal", nil)
	if withoutHistory.Intent != IntentNutritionDiet {
		t.Errorf("Expected nutrition_diet without history, got: %s", withoutHistory.Intent)
	}
}

func TestClassify_SingleWordKeywordsMatchWholeTokens(t *testing.T) {
	// "hi" must not match inside "this", "bp" must not match inside other words
	result := Classify("this is everything", nil)
	if result.Intent == IntentGreeting {
		t.Errorf("Substring of a longer word should not score greeting")
	}
}

func TestSystemPrompt(t *testing.T) {
	for _, in := range []Intent{IntentCrisis, IntentMentalHealth, IntentGreeting, IntentUnknown} {
		if SystemPrompt(in) == "" {
			t.Errorf("Expected prompt for %s", in)
		}
	}

	if SystemPrompt(Intent("nonexistent")) != intentPrompts[IntentGeneralHealth] {
		t.Error("Expected general health prompt for unmapped intent")
	}
}

func TestFallbackReply(t *testing.T) {
	if FallbackReply(IntentCrisis) == FallbackReply(IntentGreeting) {
		t.Error("Crisis fallback must differ from the default reply")
	}
	if FallbackReply(IntentGreeting) != defaultFallbackReply {
		t.Error("Unmapped intent should use the default reply")
	}
}

func TestBuildContextualPrompt(t *testing.T) {
	t.Run("without history", func(t *testing.T) {
		prompt := BuildContextualPrompt(IntentMentalHealth, nil)
		if prompt == "" {
			t.Fatal("Expected non-empty prompt")
		}
	})

	t.Run("with history", func(t *testing.T) {
		history := []Turn{
			{Role: "user", Content: "I feel stressed"},
			{Role: "assistant", Content: "I hear you. What triggered it?"},
		}
		prompt := BuildContextualPrompt(IntentMentalHealth, history)
		if !strings.Contains(prompt, "USER: I feel stressed") {
			t.Error("Expected history to be rendered into the prompt")
		}
		if !strings.Contains(prompt, "CONVERSATION HISTORY") {
			t.Error("Expected context section header")
		}
	})
}

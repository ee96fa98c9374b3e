package intent

import "strings"

// contextThreshold is the confidence below which a supplied history window
// is consulted as a weak prior for disambiguation.
const contextThreshold = 0.5

// Classify maps a free-text message to exactly one intent label and a
// confidence score in [0,1]. The optional history is an ordered window of
// prior turns, most-recent-last. The function is pure and safe for
// unbounded concurrent use; it never fails for any string input.
func Classify(message string, history []Turn) Result {
	normalized := normalize(message)
	if normalized == "" {
		return Result{Intent: IntentUnknown, Confidence: 0.0}
	}

	// Crisis check runs first and unconditionally
	for _, kw := range crisisKeywords {
		if strings.Contains(normalized, kw) {
			return Result{Intent: IntentCrisis, Confidence: 1.0}
		}
	}

	tokens := tokenize(normalized)
	scores := scoreIntents(normalized, tokens)

	best, bestScore := selectBest(scores)
	if bestScore == 0 {
		for _, phrase := range greetingFallbacks {
			if matchPhrase(normalized, tokens, phrase) {
				return Result{Intent: IntentGreeting, Confidence: 0.3}
			}
		}
		if len(history) >= 2 {
			// Stay on topic when a conversation is already underway
			return Result{Intent: IntentGeneralHealth, Confidence: 0.5}
		}
		return Result{Intent: IntentUnknown, Confidence: 0.3}
	}

	confidence := normalizeScore(bestScore)

	// Low-confidence disambiguation: bias toward the previous user turn's
	// intent and re-select
	if confidence < contextThreshold && len(history) > 0 {
		if prior, ok := previousUserIntent(history); ok {
			scores[prior]++
			best, bestScore = selectBest(scores)
			confidence = normalizeScore(bestScore)
		}
	}

	return Result{Intent: best, Confidence: confidence}
}

// normalize lowercases and collapses surrounding whitespace. Inner
// punctuation is kept because several keyword phrases contain it.
func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// tokenize splits the normalized message into alphanumeric words
func tokenize(normalized string) map[string]struct{} {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '\'':
			return false
		default:
			return true
		}
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// matchPhrase matches multi-word phrases as substrings and single words as
// whole tokens, so "bp" cannot match inside an unrelated word.
func matchPhrase(normalized string, tokens map[string]struct{}, phrase string) bool {
	if strings.ContainsRune(phrase, ' ') {
		return strings.Contains(normalized, phrase)
	}
	_, ok := tokens[phrase]
	return ok
}

func scoreIntents(normalized string, tokens map[string]struct{}) map[Intent]int {
	scores := make(map[Intent]int, len(scoringOrder))
	for _, in := range scoringOrder {
		score := 0
		for _, kw := range intentKeywords[in] {
			if matchPhrase(normalized, tokens, kw) {
				score++
			}
		}
		if score > 0 {
			scores[in] = score
		}
	}
	return scores
}

// selectBest returns the highest-scoring intent. Ties resolve to the intent
// listed first in scoringOrder, making selection deterministic.
func selectBest(scores map[Intent]int) (Intent, int) {
	best := IntentUnknown
	bestScore := 0
	for _, in := range scoringOrder {
		if score := scores[in]; score > bestScore {
			best = in
			bestScore = score
		}
	}
	return best, bestScore
}

// normalizeScore maps a raw match count to a confidence in [0,1].
// Three or more matches count as full confidence.
func normalizeScore(score int) float64 {
	confidence := float64(score) / 3
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// previousUserIntent classifies the most recent prior user turn in
// isolation. Crisis and unknown results carry no useful prior.
func previousUserIntent(history []Turn) (Intent, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != "user" {
			continue
		}
		result := Classify(history[i].Content, nil)
		switch result.Intent {
		case IntentCrisis, IntentUnknown:
			return IntentUnknown, false
		default:
			return result.Intent, true
		}
	}
	return IntentUnknown, false
}

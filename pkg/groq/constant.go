package groq

import "time"

const (
	// DefaultModel is the default Groq model
	DefaultModel = "llama-3.1-70b-versatile"

	// DefaultAPIURL is the default Groq OpenAI-compatible API endpoint
	DefaultAPIURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

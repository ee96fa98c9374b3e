package chat

import (
	"time"

	"ai-health-platform/internal/intent"
)

// Message is one persisted conversation turn.
type Message struct {
	ID         string
	UserID     string
	Role       string // user, assistant, system
	Content    string
	TokensUsed *int
	ModelUsed  *string
	CreatedAt  time.Time
}

// ChatInput is an incoming chat message.
type ChatInput struct {
	Message string
}

// ChatOutput is the coach reply plus the routing decision behind it.
type ChatOutput struct {
	Reply      string
	Intent     intent.Intent
	Confidence float64
	Provider   string
	Model      string
	Fallback   bool
}

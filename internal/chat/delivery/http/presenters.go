package http

import (
	"time"

	"ai-health-platform/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required,min=1,max=4000"`
}

type publicChatReq struct {
	Message   string `json:"message"    binding:"required,min=1,max=4000"`
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
}

// --- Response DTOs ---

type chatResp struct {
	Response   string  `json:"response"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Provider   string  `json:"provider,omitempty"`
	Model      string  `json:"model,omitempty"`
	Fallback   bool    `json:"fallback,omitempty"`
	SessionID  string  `json:"session_id,omitempty"`
}

func newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:   out.Reply,
		Intent:     out.Intent.String(),
		Confidence: out.Confidence,
		Provider:   out.Provider,
		Model:      out.Model,
		Fallback:   out.Fallback,
	}
}

type historyItemResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newHistoryResp(messages []chat.Message) []historyItemResp {
	items := make([]historyItemResp, 0, len(messages))
	for _, m := range messages {
		items = append(items, historyItemResp{
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return items
}

package chat

import (
	"context"

	"ai-health-platform/internal/model"
)

type UseCase interface {
	// Chat answers an authenticated user, persisting both turns.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// PublicChat answers an anonymous session. Nothing is persisted and the
	// reply degrades to an intent-aware fallback instead of failing.
	PublicChat(ctx context.Context, sessionID string, input ChatInput) ChatOutput

	History(ctx context.Context, sc model.Scope) ([]Message, error)
}

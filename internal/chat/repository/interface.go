package repository

import (
	"context"

	"ai-health-platform/internal/chat"
)

type Repository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (chat.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]chat.Message, error)
}

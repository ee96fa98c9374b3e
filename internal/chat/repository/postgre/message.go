package postgre

import (
	"context"
	"fmt"

	"ai-health-platform/internal/chat"
	repo "ai-health-platform/internal/chat/repository"
)

const messageColumns = `id, user_id, role, content, tokens_used, model_used, created_at`

// CreateMessage inserts a conversation turn and returns the created entity.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (chat.Message, error) {
	query := fmt.Sprintf(`
		INSERT INTO conversations (user_id, role, content, tokens_used, model_used, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s`, messageColumns)

	var m chat.Message
	err := r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.Role, opt.Content, opt.TokensUsed, opt.ModelUsed,
	).Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.TokensUsed, &m.ModelUsed, &m.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return chat.Message{}, repo.ErrFailedToInsert
	}
	return m, nil
}

// ListMessages returns a user's conversation history.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]chat.Message, error) {
	order := "ASC"
	if opt.Descending {
		order = "DESC"
	}
	query := fmt.Sprintf("SELECT %s FROM conversations WHERE user_id = $1 ORDER BY created_at %s", messageColumns, order)
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT $2", query)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.TokensUsed, &m.ModelUsed, &m.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

package postgre

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-health-platform/internal/agent"
	repo "ai-health-platform/internal/agent/repository"
)

const actionColumns = `id, user_id, action_type, message, context, delivered, acknowledged, created_at`

// CreateAction inserts an agent action and returns the created entity.
func (r *implRepository) CreateAction(ctx context.Context, opt repo.CreateActionOptions) (agent.Action, error) {
	contextData, err := json.Marshal(opt.Context)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal context: %v", r.dsn("CreateAction"), err)
		return agent.Action{}, repo.ErrFailedToInsert
	}

	query := fmt.Sprintf(`
		INSERT INTO agent_actions (user_id, action_type, message, context, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s`, actionColumns)

	action, err := r.scanAction(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.ActionType, opt.Message, contextData,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAction"), err)
		return agent.Action{}, repo.ErrFailedToInsert
	}
	return action, nil
}

// ListRecentActions returns a user's latest actions, newest first.
func (r *implRepository) ListRecentActions(ctx context.Context, userID string, limit int) ([]agent.Action, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM agent_actions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2",
		actionColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentActions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var actions []agent.Action
	for rows.Next() {
		action, err := r.scanAction(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRecentActions"), err)
			return nil, repo.ErrFailedToList
		}
		actions = append(actions, action)
	}
	return actions, rows.Err()
}

// HasActionSince reports whether a matching action exists from the given
// instant onward.
func (r *implRepository) HasActionSince(ctx context.Context, opt repo.HasActionOptions, since time.Time) (bool, error) {
	conditions := []string{"user_id = $1", "action_type = $2", "created_at >= $3"}
	args := []any{opt.UserID, opt.ActionType, since}
	if opt.HabitID != "" {
		conditions = append(conditions, fmt.Sprintf("context ->> 'habit_id' = $%d", len(args)+1))
		args = append(args, opt.HabitID)
	}
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM agent_actions WHERE %s)",
		strings.Join(conditions, " AND "))

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasActionSince"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanAction(row rowScanner) (agent.Action, error) {
	var a agent.Action
	var contextData []byte
	err := row.Scan(
		&a.ID, &a.UserID, &a.ActionType, &a.Message, &contextData,
		&a.Delivered, &a.Acknowledged, &a.CreatedAt,
	)
	if err != nil {
		return agent.Action{}, err
	}
	if len(contextData) > 0 {
		if err := json.Unmarshal(contextData, &a.Context); err != nil {
			return agent.Action{}, err
		}
	}
	return a, nil
}

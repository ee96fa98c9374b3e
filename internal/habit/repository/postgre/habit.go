package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-health-platform/internal/habit"
	repo "ai-health-platform/internal/habit/repository"
)

const habitColumns = `id, user_id, name, description, frequency, target_conditions,
	impact_level, rationale, streak_count, total_completions, last_completed_at,
	is_active, created_at, updated_at`

// CreateHabit inserts a new habit row and returns the created entity.
func (r *implRepository) CreateHabit(ctx context.Context, opt repo.CreateHabitOptions) (habit.Habit, error) {
	targetConditions, err := json.Marshal(opt.TargetConditions)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal conditions: %v", r.dsn("CreateHabit"), err)
		return habit.Habit{}, repo.ErrFailedToInsert
	}

	query := fmt.Sprintf(`
		INSERT INTO habits (
			user_id, name, description, frequency, target_conditions,
			impact_level, rationale, streak_count, total_completions,
			is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, TRUE, NOW(), NOW())
		RETURNING %s`, habitColumns)

	h, err := r.scanHabit(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.Name, opt.Description, opt.Frequency, targetConditions,
		opt.ImpactLevel, opt.Rationale,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateHabit"), err)
		return habit.Habit{}, repo.ErrFailedToInsert
	}
	return h, nil
}

// GetOneHabit retrieves a single habit by the provided filters (AND condition).
// Returns zero-value Habit (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneHabit(ctx context.Context, opt repo.GetOneHabitOptions) (habit.Habit, error) {
	conditions := []string{"id = $1"}
	args := []any{opt.ID}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = $2")
		args = append(args, opt.UserID)
	}
	query := fmt.Sprintf("SELECT %s FROM habits WHERE %s LIMIT 1",
		habitColumns, strings.Join(conditions, " AND "))

	h, err := r.scanHabit(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return habit.Habit{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneHabit"), err)
		return habit.Habit{}, repo.ErrFailedToGet
	}
	return h, nil
}

// ListHabits returns a user's habits, newest first.
func (r *implRepository) ListHabits(ctx context.Context, opt repo.ListHabitsOptions) ([]habit.Habit, error) {
	conditions := []string{"user_id = $1"}
	if opt.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	query := fmt.Sprintf("SELECT %s FROM habits WHERE %s ORDER BY created_at DESC",
		habitColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHabits"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var habits []habit.Habit
	for rows.Next() {
		h, err := r.scanHabit(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListHabits"), err)
			return nil, repo.ErrFailedToList
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// UpdateHabitStats writes the streak bookkeeping after a log entry.
func (r *implRepository) UpdateHabitStats(ctx context.Context, opt repo.UpdateHabitStatsOptions) (habit.Habit, error) {
	query := fmt.Sprintf(`
		UPDATE habits
		SET streak_count = $1, total_completions = $2, last_completed_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING %s`, habitColumns)

	h, err := r.scanHabit(r.db.QueryRowContext(ctx, query,
		opt.StreakCount, opt.TotalCompletions, opt.LastCompletedAt, opt.ID,
	))
	if err == sql.ErrNoRows {
		return habit.Habit{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateHabitStats"), err)
		return habit.Habit{}, repo.ErrFailedToUpdate
	}
	return h, nil
}

// CreateHabitLog inserts a habit log row.
func (r *implRepository) CreateHabitLog(ctx context.Context, opt repo.CreateHabitLogOptions) (habit.Log, error) {
	const query = `
		INSERT INTO habit_logs (habit_id, completed, notes, logged_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, habit_id, completed, notes, logged_at`

	var l habit.Log
	err := r.db.QueryRowContext(ctx, query, opt.HabitID, opt.Completed, opt.Notes).
		Scan(&l.ID, &l.HabitID, &l.Completed, &l.Notes, &l.LoggedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateHabitLog"), err)
		return habit.Log{}, repo.ErrFailedToInsert
	}
	return l, nil
}

// CountCompletionsSince counts completed log entries across all of the
// user's active habits from the given instant onward.
func (r *implRepository) CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM habit_logs hl
		JOIN habits h ON h.id = hl.habit_id
		WHERE h.user_id = $1 AND h.is_active = TRUE AND hl.completed = TRUE AND hl.logged_at >= $2`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, since).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountCompletionsSince"), err)
		return 0, repo.ErrFailedToGet
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanHabit(row rowScanner) (habit.Habit, error) {
	var h habit.Habit
	var targetConditions []byte
	err := row.Scan(
		&h.ID, &h.UserID, &h.Name, &h.Description, &h.Frequency, &targetConditions,
		&h.ImpactLevel, &h.Rationale, &h.StreakCount, &h.TotalCompletions, &h.LastCompletedAt,
		&h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return habit.Habit{}, err
	}
	if len(targetConditions) > 0 {
		if err := json.Unmarshal(targetConditions, &h.TargetConditions); err != nil {
			return habit.Habit{}, err
		}
	}
	return h, nil
}

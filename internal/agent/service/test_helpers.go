package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-health-platform/internal/agent"
	"ai-health-platform/internal/agent/repository"
	"ai-health-platform/internal/habit"
	habitrepo "ai-health-platform/internal/habit/repository"
	"ai-health-platform/internal/health"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}

type mockUsers struct {
	ids []string
	err error
}

func (m *mockUsers) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ids, nil
}

type mockHabits struct {
	habits map[string][]habit.Habit
	err    error
}

func (m *mockHabits) ListHabits(ctx context.Context, opt habitrepo.ListHabitsOptions) ([]habit.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.habits[opt.UserID], nil
}

type mockPredictions struct {
	latest map[string]health.Prediction
	err    error
}

func (m *mockPredictions) GetLatestPrediction(ctx context.Context, userID string) (health.Prediction, error) {
	if m.err != nil {
		return health.Prediction{}, m.err
	}
	return m.latest[userID], nil
}

// mockActions records created actions and answers the dedup lookup from
// both the recorded actions and a preseeded set.
type mockActions struct {
	created  []repository.CreateActionOptions
	existing []repository.CreateActionOptions
	err      error
}

func (m *mockActions) CreateAction(ctx context.Context, opt repository.CreateActionOptions) (agent.Action, error) {
	if m.err != nil {
		return agent.Action{}, m.err
	}
	m.created = append(m.created, opt)
	return agent.Action{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		ActionType: opt.ActionType,
		Message:    opt.Message,
		Context:    opt.Context,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (m *mockActions) ListRecentActions(ctx context.Context, userID string, limit int) ([]agent.Action, error) {
	return nil, nil
}

func (m *mockActions) HasActionSince(ctx context.Context, opt repository.HasActionOptions, since time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, set := range [][]repository.CreateActionOptions{m.existing, m.created} {
		for _, a := range set {
			if a.UserID != opt.UserID || a.ActionType != opt.ActionType {
				continue
			}
			if opt.HabitID != "" && a.Context["habit_id"] != opt.HabitID {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

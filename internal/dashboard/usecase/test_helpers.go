package usecase

import (
	"context"
	"time"

	"ai-health-platform/internal/agent"
	"ai-health-platform/internal/habit"
	habitrepo "ai-health-platform/internal/habit/repository"
	"ai-health-platform/internal/health"
	healthrepo "ai-health-platform/internal/health/repository"
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

type mockPredictions struct {
	predictions []health.Prediction
	lastOpt     healthrepo.ListPredictionsOptions
	err         error
}

func (m *mockPredictions) ListPredictions(ctx context.Context, opt healthrepo.ListPredictionsOptions) ([]health.Prediction, error) {
	m.lastOpt = opt
	if m.err != nil {
		return nil, m.err
	}
	return m.predictions, nil
}

type mockHabits struct {
	habits    []habit.Habit
	completed int
	lastSince time.Time
	err       error
}

func (m *mockHabits) ListHabits(ctx context.Context, opt habitrepo.ListHabitsOptions) ([]habit.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.habits, nil
}

func (m *mockHabits) CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	m.lastSince = since
	if m.err != nil {
		return 0, m.err
	}
	return m.completed, nil
}

type mockActions struct {
	actions   []agent.Action
	lastLimit int
	err       error
}

func (m *mockActions) ListRecentActions(ctx context.Context, userID string, limit int) ([]agent.Action, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.actions) {
		return m.actions[:limit], nil
	}
	return m.actions, nil
}

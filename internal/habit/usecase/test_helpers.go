package usecase

import (
	"context"
	"fmt"
	"time"

	"ai-health-platform/internal/habit"
	repo "ai-health-platform/internal/habit/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepository struct {
	habits map[string]habit.Habit
	logs   []repo.CreateHabitLogOptions
	err    error
}

func newMockRepository() *mockRepository {
	return &mockRepository{habits: make(map[string]habit.Habit)}
}

func (m *mockRepository) CreateHabit(ctx context.Context, opt repo.CreateHabitOptions) (habit.Habit, error) {
	if m.err != nil {
		return habit.Habit{}, m.err
	}
	h := habit.Habit{
		ID:               fmt.Sprintf("habit-%d", len(m.habits)+1),
		UserID:           opt.UserID,
		Name:             opt.Name,
		Description:      opt.Description,
		Frequency:        opt.Frequency,
		TargetConditions: opt.TargetConditions,
		ImpactLevel:      opt.ImpactLevel,
		Rationale:        opt.Rationale,
		IsActive:         true,
		CreatedAt:        time.Now(),
	}
	m.habits[h.ID] = h
	return h, nil
}

func (m *mockRepository) GetOneHabit(ctx context.Context, opt repo.GetOneHabitOptions) (habit.Habit, error) {
	if m.err != nil {
		return habit.Habit{}, m.err
	}
	h := m.habits[opt.ID]
	if opt.UserID != "" && h.UserID != opt.UserID {
		return habit.Habit{}, nil
	}
	return h, nil
}

func (m *mockRepository) ListHabits(ctx context.Context, opt repo.ListHabitsOptions) ([]habit.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []habit.Habit
	for _, h := range m.habits {
		if h.UserID != opt.UserID {
			continue
		}
		if opt.ActiveOnly && !h.IsActive {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (m *mockRepository) UpdateHabitStats(ctx context.Context, opt repo.UpdateHabitStatsOptions) (habit.Habit, error) {
	if m.err != nil {
		return habit.Habit{}, m.err
	}
	h, ok := m.habits[opt.ID]
	if !ok {
		return habit.Habit{}, nil
	}
	h.StreakCount = opt.StreakCount
	h.TotalCompletions = opt.TotalCompletions
	h.LastCompletedAt = opt.LastCompletedAt
	m.habits[opt.ID] = h
	return h, nil
}

func (m *mockRepository) CreateHabitLog(ctx context.Context, opt repo.CreateHabitLogOptions) (habit.Log, error) {
	if m.err != nil {
		return habit.Log{}, m.err
	}
	m.logs = append(m.logs, opt)
	return habit.Log{
		ID:        fmt.Sprintf("log-%d", len(m.logs)),
		HabitID:   opt.HabitID,
		Completed: opt.Completed,
		Notes:     opt.Notes,
		LoggedAt:  time.Now(),
	}, nil
}

func (m *mockRepository) CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, l := range m.logs {
		if l.Completed {
			count++
		}
	}
	return count, nil
}

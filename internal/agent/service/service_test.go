package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-health-platform/config"
	"ai-health-platform/internal/agent"
	"ai-health-platform/internal/agent/repository"
	"ai-health-platform/internal/habit"
	"ai-health-platform/internal/health"
)

func newTestService(users *mockUsers, habits *mockHabits, predictions *mockPredictions, actions *mockActions, now time.Time) *Service {
	s := New(
		config.AgentConfig{Enabled: true, Interval: "@every 1h", MaxPredictionAgeDays: 30},
		users, habits, predictions, actions,
		mockLogger{},
	)
	s.now = func() time.Time { return now }
	return s
}

func timePtr(t time.Time) *time.Time { return &t }

func TestRunHabitReminders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	t.Run("reminds about idle habit", func(t *testing.T) {
		habits := &mockHabits{habits: map[string][]habit.Habit{
			"u1": {
				{ID: "h1", UserID: "u1", Name: "Morning Walk", LastCompletedAt: timePtr(now.Add(-3 * 24 * time.Hour))},
				{ID: "h2", UserID: "u1", Name: "Meditation", LastCompletedAt: timePtr(now.Add(-6 * time.Hour))},
			},
		}}
		actions := &mockActions{}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, habits, &mockPredictions{}, actions, now)

		if err := svc.Run(ctx); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(actions.created) != 1 {
			t.Fatalf("created = %d actions, want 1", len(actions.created))
		}
		got := actions.created[0]
		if got.ActionType != agent.ActionReminder {
			t.Errorf("action type = %q, want reminder", got.ActionType)
		}
		if got.Context["habit_id"] != "h1" {
			t.Errorf("habit_id = %v, want h1", got.Context["habit_id"])
		}
		if !strings.Contains(got.Message, "Morning Walk") {
			t.Errorf("message %q does not name the habit", got.Message)
		}
		if got.Context["idle_days"] != 3 {
			t.Errorf("idle_days = %v, want 3", got.Context["idle_days"])
		}
	})

	t.Run("never-completed habit falls back to creation time", func(t *testing.T) {
		habits := &mockHabits{habits: map[string][]habit.Habit{
			"u1": {{ID: "h1", UserID: "u1", Name: "Hydration", CreatedAt: now.Add(-5 * 24 * time.Hour)}},
		}}
		actions := &mockActions{}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, habits, &mockPredictions{}, actions, now)

		if err := svc.Run(ctx); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(actions.created) != 1 {
			t.Fatalf("created = %d actions, want 1", len(actions.created))
		}
	})

	t.Run("deduplicates within the same day", func(t *testing.T) {
		habits := &mockHabits{habits: map[string][]habit.Habit{
			"u1": {{ID: "h1", UserID: "u1", Name: "Morning Walk", LastCompletedAt: timePtr(now.Add(-3 * 24 * time.Hour))}},
		}}
		actions := &mockActions{existing: []repository.CreateActionOptions{{
			UserID:     "u1",
			ActionType: agent.ActionReminder,
			Context:    map[string]any{"habit_id": "h1"},
		}}}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, habits, &mockPredictions{}, actions, now)

		if err := svc.Run(ctx); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(actions.created) != 0 {
			t.Fatalf("created = %d actions, want 0", len(actions.created))
		}
	})

	t.Run("one reminder per habit across repeated sweeps", func(t *testing.T) {
		habits := &mockHabits{habits: map[string][]habit.Habit{
			"u1": {{ID: "h1", UserID: "u1", Name: "Morning Walk", LastCompletedAt: timePtr(now.Add(-3 * 24 * time.Hour))}},
		}}
		actions := &mockActions{}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, habits, &mockPredictions{}, actions, now)

		for i := 0; i < 3; i++ {
			if err := svc.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}
		}
		if len(actions.created) != 1 {
			t.Fatalf("created = %d actions after 3 sweeps, want 1", len(actions.created))
		}
	})
}

func TestRunStalePredictionAlerts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	t.Run("alerts on stale assessment", func(t *testing.T) {
		predictions := &mockPredictions{latest: map[string]health.Prediction{
			"u1": {ID: "p1", UserID: "u1", DiseaseType: health.DiseaseDiabetes, CreatedAt: now.Add(-45 * 24 * time.Hour)},
		}}
		actions := &mockActions{}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, &mockHabits{}, predictions, actions, now)

		if err := svc.Run(ctx); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(actions.created) != 1 {
			t.Fatalf("created = %d actions, want 1", len(actions.created))
		}
		got := actions.created[0]
		if got.ActionType != agent.ActionAlert {
			t.Errorf("action type = %q, want alert", got.ActionType)
		}
		if got.Context["disease_type"] != health.DiseaseDiabetes {
			t.Errorf("disease_type = %v, want diabetes", got.Context["disease_type"])
		}
	})

	t.Run("fresh assessment stays quiet", func(t *testing.T) {
		predictions := &mockPredictions{latest: map[string]health.Prediction{
			"u1": {ID: "p1", UserID: "u1", DiseaseType: health.DiseaseHeart, CreatedAt: now.Add(-5 * 24 * time.Hour)},
		}}
		actions := &mockActions{}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, &mockHabits{}, predictions, actions, now)

		if err := svc.Run(ctx); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(actions.created) != 0 {
			t.Fatalf("created = %d actions, want 0", len(actions.created))
		}
	})

	t.Run("user without assessments is skipped", func(t *testing.T) {
		actions := &mockActions{}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, &mockHabits{}, &mockPredictions{}, actions, now)

		if err := svc.Run(ctx); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(actions.created) != 0 {
			t.Fatalf("created = %d actions, want 0", len(actions.created))
		}
	})

	t.Run("alert deduplicated per day", func(t *testing.T) {
		predictions := &mockPredictions{latest: map[string]health.Prediction{
			"u1": {ID: "p1", UserID: "u1", DiseaseType: health.DiseasePCOS, CreatedAt: now.Add(-60 * 24 * time.Hour)},
		}}
		actions := &mockActions{}
		svc := newTestService(&mockUsers{ids: []string{"u1"}}, &mockHabits{}, predictions, actions, now)

		for i := 0; i < 2; i++ {
			if err := svc.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}
		}
		if len(actions.created) != 1 {
			t.Fatalf("created = %d actions after 2 sweeps, want 1", len(actions.created))
		}
	})
}

func TestRunContinuesPastFailingUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	predictions := &mockPredictions{latest: map[string]health.Prediction{
		"u2": {ID: "p1", UserID: "u2", DiseaseType: health.DiseaseDiabetes, CreatedAt: now.Add(-45 * 24 * time.Hour)},
	}}
	habits := &mockHabits{err: errors.New("boom")}
	actions := &mockActions{}
	svc := newTestService(&mockUsers{ids: []string{"u1", "u2"}}, habits, predictions, actions, now)

	err := svc.Run(ctx)
	if err == nil {
		t.Fatal("Run returned nil error, want habit failure surfaced")
	}
	// The prediction sweep still ran for both users.
	if len(actions.created) != 1 {
		t.Fatalf("created = %d actions, want 1", len(actions.created))
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-health-platform/internal/agent"
	"ai-health-platform/internal/habit"
	"ai-health-platform/internal/health"
	"ai-health-platform/internal/model"
)

func TestSummary(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("aggregates all sections", func(t *testing.T) {
		predictions := &mockPredictions{predictions: []health.Prediction{
			{ID: "p1", DiseaseType: health.DiseaseDiabetes},
			{ID: "p2", DiseaseType: health.DiseaseHeart},
		}}
		habits := &mockHabits{
			habits:    []habit.Habit{{ID: "h1"}, {ID: "h2"}},
			completed: 9,
		}
		actions := &mockActions{actions: []agent.Action{{ID: "a1"}, {ID: "a2"}}}

		uc := New(predictions, habits, actions, mockLogger{})
		uc.now = func() time.Time { return now }

		got, err := uc.Summary(ctx, sc)
		if err != nil {
			t.Fatalf("Summary: %v", err)
		}
		if len(got.LatestPredictions) != 2 {
			t.Errorf("predictions = %d, want 2", len(got.LatestPredictions))
		}
		if predictions.lastOpt.Limit != 3 {
			t.Errorf("prediction limit = %d, want 3", predictions.lastOpt.Limit)
		}
		if got.ActiveHabits != 2 {
			t.Errorf("active habits = %d, want 2", got.ActiveHabits)
		}
		// 9 completions over 2 habits * 7 days = 64.3%.
		if got.CompletionRate != 64.3 {
			t.Errorf("completion rate = %v, want 64.3", got.CompletionRate)
		}
		if want := now.Add(-7 * 24 * time.Hour); !habits.lastSince.Equal(want) {
			t.Errorf("completion window since = %v, want %v", habits.lastSince, want)
		}
		if len(got.RecentActions) != 2 {
			t.Errorf("actions = %d, want 2", len(got.RecentActions))
		}
		if actions.lastLimit != 5 {
			t.Errorf("action limit = %d, want 5", actions.lastLimit)
		}
	})

	t.Run("no habits means zero completion rate", func(t *testing.T) {
		habits := &mockHabits{completed: 100}
		uc := New(&mockPredictions{}, habits, &mockActions{}, mockLogger{})
		uc.now = func() time.Time { return now }

		got, err := uc.Summary(ctx, sc)
		if err != nil {
			t.Fatalf("Summary: %v", err)
		}
		if got.ActiveHabits != 0 {
			t.Errorf("active habits = %d, want 0", got.ActiveHabits)
		}
		if got.CompletionRate != 0 {
			t.Errorf("completion rate = %v, want 0", got.CompletionRate)
		}
		if !habits.lastSince.IsZero() {
			t.Error("CountCompletionsSince called with no habits")
		}
	})

	t.Run("rate capped by window arithmetic", func(t *testing.T) {
		habits := &mockHabits{
			habits:    []habit.Habit{{ID: "h1"}},
			completed: 7,
		}
		uc := New(&mockPredictions{}, habits, &mockActions{}, mockLogger{})
		uc.now = func() time.Time { return now }

		got, err := uc.Summary(ctx, sc)
		if err != nil {
			t.Fatalf("Summary: %v", err)
		}
		if got.CompletionRate != 100 {
			t.Errorf("completion rate = %v, want 100", got.CompletionRate)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		uc := New(&mockPredictions{err: errors.New("boom")}, &mockHabits{}, &mockActions{}, mockLogger{})

		if _, err := uc.Summary(ctx, sc); err == nil {
			t.Fatal("Summary returned nil error, want failure")
		}
	})
}

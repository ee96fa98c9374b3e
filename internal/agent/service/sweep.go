package service

import (
	"context"
	"fmt"
	"time"

	"ai-health-platform/internal/agent"
	"ai-health-platform/internal/agent/repository"
	habitrepo "ai-health-platform/internal/habit/repository"
)

const habitIdleDays = 2

// Run performs one sweep over all active users. It never stops at the first
// failing user; the first error is returned after the sweep completes.
func (s *Service) Run(ctx context.Context) error {
	userIDs, err := s.users.ListActiveUserIDs(ctx)
	if err != nil {
		s.l.Errorf(ctx, "agent.Run ListActiveUserIDs: %v", err)
		return err
	}

	var firstErr error
	for _, userID := range userIDs {
		if err := s.sweepHabits(ctx, userID); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := s.sweepPredictions(ctx, userID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// sweepHabits emits a reminder for every active habit that has not been
// completed for habitIdleDays or more, at most once per habit per day.
func (s *Service) sweepHabits(ctx context.Context, userID string) error {
	habits, err := s.habits.ListHabits(ctx, habitrepo.ListHabitsOptions{
		UserID:     userID,
		ActiveOnly: true,
	})
	if err != nil {
		s.l.Errorf(ctx, "agent.sweepHabits ListHabits: %v", err)
		return err
	}

	now := s.now().UTC()
	for _, h := range habits {
		last := h.CreatedAt
		if h.LastCompletedAt != nil {
			last = *h.LastCompletedAt
		}
		idleDays := int(now.Sub(last).Hours() / 24)
		if idleDays < habitIdleDays {
			continue
		}

		exists, err := s.actions.HasActionSince(ctx, repository.HasActionOptions{
			UserID:     userID,
			ActionType: agent.ActionReminder,
			HabitID:    h.ID,
		}, startOfDay(now))
		if err != nil {
			s.l.Errorf(ctx, "agent.sweepHabits HasActionSince: %v", err)
			return err
		}
		if exists {
			continue
		}

		msg := fmt.Sprintf("You haven't logged %q in %d days. A small step today keeps your streak alive.", h.Name, idleDays)
		if _, err := s.actions.CreateAction(ctx, repository.CreateActionOptions{
			UserID:     userID,
			ActionType: agent.ActionReminder,
			Message:    msg,
			Context: map[string]any{
				"habit_id":   h.ID,
				"habit_name": h.Name,
				"idle_days":  idleDays,
			},
		}); err != nil {
			s.l.Errorf(ctx, "agent.sweepHabits CreateAction: %v", err)
			return err
		}
	}
	return nil
}

// sweepPredictions emits an alert when the user's newest risk assessment is
// older than the configured maximum, at most once per user per day.
func (s *Service) sweepPredictions(ctx context.Context, userID string) error {
	p, err := s.predictions.GetLatestPrediction(ctx, userID)
	if err != nil {
		s.l.Errorf(ctx, "agent.sweepPredictions GetLatestPrediction: %v", err)
		return err
	}
	if p.ID == "" {
		// Never assessed, nothing to go stale.
		return nil
	}

	now := s.now().UTC()
	ageDays := int(now.Sub(p.CreatedAt).Hours() / 24)
	if ageDays <= s.cfg.MaxPredictionAgeDays {
		return nil
	}

	exists, err := s.actions.HasActionSince(ctx, repository.HasActionOptions{
		UserID:     userID,
		ActionType: agent.ActionAlert,
	}, startOfDay(now))
	if err != nil {
		s.l.Errorf(ctx, "agent.sweepPredictions HasActionSince: %v", err)
		return err
	}
	if exists {
		return nil
	}

	msg := fmt.Sprintf("Your latest %s risk assessment is %d days old. Consider running a fresh check-up.", p.DiseaseType, ageDays)
	if _, err := s.actions.CreateAction(ctx, repository.CreateActionOptions{
		UserID:     userID,
		ActionType: agent.ActionAlert,
		Message:    msg,
		Context: map[string]any{
			"disease_type": p.DiseaseType,
			"age_days":     ageDays,
		},
	}); err != nil {
		s.l.Errorf(ctx, "agent.sweepPredictions CreateAction: %v", err)
		return err
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

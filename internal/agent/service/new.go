package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"ai-health-platform/config"
	agentrepo "ai-health-platform/internal/agent/repository"
	"ai-health-platform/internal/habit"
	habitrepo "ai-health-platform/internal/habit/repository"
	"ai-health-platform/internal/health"
	"ai-health-platform/pkg/log"
)

// userSource lists the accounts the agent sweeps.
type userSource interface {
	ListActiveUserIDs(ctx context.Context) ([]string, error)
}

// habitSource exposes the habits of one user.
type habitSource interface {
	ListHabits(ctx context.Context, opt habitrepo.ListHabitsOptions) ([]habit.Habit, error)
}

// predictionSource exposes the newest risk assessment of one user.
type predictionSource interface {
	GetLatestPrediction(ctx context.Context, userID string) (health.Prediction, error)
}

// Service is the proactive agent: a cron-driven sweep that emits reminders
// for idle habits and alerts for stale risk assessments.
type Service struct {
	cfg         config.AgentConfig
	users       userSource
	habits      habitSource
	predictions predictionSource
	actions     agentrepo.Repository
	l           log.Logger

	cron *cron.Cron
	now  func() time.Time
}

// New creates the agent service. Call Start to schedule the sweep.
func New(
	cfg config.AgentConfig,
	users userSource,
	habits habitSource,
	predictions predictionSource,
	actions agentrepo.Repository,
	l log.Logger,
) *Service {
	return &Service{
		cfg:         cfg,
		users:       users,
		habits:      habits,
		predictions: predictions,
		actions:     actions,
		l:           l,
		cron:        cron.New(),
		now:         time.Now,
	}
}

// Start schedules the sweep at the configured interval. A disabled agent is
// a no-op.
func (s *Service) Start() error {
	if !s.cfg.Enabled {
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.Interval, func() {
		ctx := context.Background()
		if err := s.Run(ctx); err != nil {
			s.l.Errorf(ctx, "agent.Run: %v", err)
		}
	}); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

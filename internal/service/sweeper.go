package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleSweeper removes sessions idle for longer than a TTL.
type IdleSweeper interface {
	SweepIdle(ctx context.Context, ttl time.Duration) int
}

// SessionSweeper periodically evicts idle quiz sessions.
type SessionSweeper struct {
	sweeper  IdleSweeper
	schedule string
	ttl      time.Duration
	logger   *zap.Logger
}

// NewSessionSweeper creates a sweeper running on a cron schedule.
func NewSessionSweeper(sweeper IdleSweeper, schedule string, ttl time.Duration, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		sweeper:  sweeper,
		schedule: schedule,
		ttl:      ttl,
		logger:   logger,
	}
}

// Start runs the sweep loop until ctx is done.
func (s *SessionSweeper) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(s.schedule, func() { s.sweep(ctx) }); err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("session sweeper started",
		zap.String("schedule", s.schedule),
		zap.Duration("ttl", s.ttl),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
	return nil
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed := s.sweeper.SweepIdle(ctx, s.ttl)
	s.logger.Info("idle sessions swept", zap.Int("removed", removed))
}

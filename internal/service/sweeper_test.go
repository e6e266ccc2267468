package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSweeper struct {
	calls int
	ttl   time.Duration
}

func (c *countingSweeper) SweepIdle(_ context.Context, ttl time.Duration) int {
	c.calls++
	c.ttl = ttl
	return 3
}

func TestSessionSweeper_Sweep(t *testing.T) {
	target := &countingSweeper{}
	s := NewSessionSweeper(target, "*/10 * * * *", 30*time.Minute, zap.NewNop())

	s.sweep(context.Background())

	assert.Equal(t, 1, target.calls)
	assert.Equal(t, 30*time.Minute, target.ttl)
}

func TestSessionSweeper_InvalidSchedule(t *testing.T) {
	s := NewSessionSweeper(&countingSweeper{}, "not a schedule", time.Minute, zap.NewNop())

	err := s.Start(context.Background())
	require.Error(t, err)
}

func TestSessionSweeper_StopsOnCancel(t *testing.T) {
	s := NewSessionSweeper(&countingSweeper{}, "@every 1h", time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

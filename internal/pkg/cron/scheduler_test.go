package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var ok, failed int32
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ok, 1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&failed, 1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&ok))
	assert.Equal(t, int32(1), atomic.LoadInt32(&failed))
}

func TestScheduler_RunUntilCancelled(t *testing.T) {
	s := NewScheduler()
	ticks := make(chan struct{}, 16)
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

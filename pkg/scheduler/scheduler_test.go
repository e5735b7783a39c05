package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/politrend/pkg/domain"
	"github.com/umputun/politrend/pkg/scheduler/mocks"
)

func TestNew(t *testing.T) {
	updater := &mocks.UpdaterMock{}

	t.Run("defaults", func(t *testing.T) {
		s, err := New(updater, Config{})
		require.NoError(t, err)
		assert.Equal(t, "@every 15m", s.cfg.Spec)
		assert.Equal(t, "UTC", s.cfg.Timezone)
		assert.Equal(t, 5*time.Minute, s.cfg.CycleTimeout)
	})

	t.Run("cron spec", func(t *testing.T) {
		_, err := New(updater, Config{Spec: "*/10 * * * *", Timezone: "America/New_York"})
		require.NoError(t, err)
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, err := New(updater, Config{Spec: "every now and then"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid schedule")
	})

	t.Run("invalid timezone", func(t *testing.T) {
		_, err := New(updater, Config{Timezone: "Mars/Olympus"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timezone")
	})
}

func TestScheduler_RunOnStart(t *testing.T) {
	var calls int32
	updater := &mocks.UpdaterMock{UpdateFunc: func(context.Context) (domain.UpdateSummary, error) {
		atomic.AddInt32(&calls, 1)
		return domain.UpdateSummary{Total: 1}, nil
	}}

	s, err := New(updater, Config{Spec: "@every 1h", RunOnStart: true})
	require.NoError(t, err)
	s.Start(context.Background())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestScheduler_FailedCyclesKeepRunning(t *testing.T) {
	var calls int32
	updater := &mocks.UpdaterMock{UpdateFunc: func(context.Context) (domain.UpdateSummary, error) {
		atomic.AddInt32(&calls, 1)
		return domain.UpdateSummary{}, errors.New("save entities: database is locked")
	}}

	s, err := New(updater, Config{Spec: "@every 1s", RunOnStart: true})
	require.NoError(t, err)
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, 3*time.Second, 10*time.Millisecond,
		"scheduled cycle runs after a failed one")
}

func TestScheduler_PanicsRecovered(t *testing.T) {
	var calls int32
	updater := &mocks.UpdaterMock{UpdateFunc: func(context.Context) (domain.UpdateSummary, error) {
		atomic.AddInt32(&calls, 1)
		panic("nil entity in snapshot")
	}}

	s, err := New(updater, Config{Spec: "@every 1s", RunOnStart: true})
	require.NoError(t, err)
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, 3*time.Second, 10*time.Millisecond,
		"initial and scheduled cycles survive a panic")
}

func TestScheduler_CycleTimeout(t *testing.T) {
	updater := &mocks.UpdaterMock{UpdateFunc: func(ctx context.Context) (domain.UpdateSummary, error) {
		<-ctx.Done()
		return domain.UpdateSummary{}, ctx.Err()
	}}

	s, err := New(updater, Config{CycleTimeout: 20 * time.Millisecond})
	require.NoError(t, err)

	st := time.Now()
	s.runCycle(context.Background())
	assert.Less(t, time.Since(st), time.Second)
	require.Len(t, updater.UpdateCalls(), 1)
	_, hasDeadline := updater.UpdateCalls()[0].Ctx.Deadline()
	assert.True(t, hasDeadline)
}

func TestScheduler_StopCancelsCycle(t *testing.T) {
	started := make(chan struct{})
	updater := &mocks.UpdaterMock{UpdateFunc: func(ctx context.Context) (domain.UpdateSummary, error) {
		close(started)
		<-ctx.Done()
		return domain.UpdateSummary{}, ctx.Err()
	}}

	s, err := New(updater, Config{Spec: "@every 1h", RunOnStart: true})
	require.NoError(t, err)
	s.Start(context.Background())
	<-started

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stop did not cancel the running cycle")
	}
}

func TestScheduler_SkipsCancelledContext(t *testing.T) {
	updater := &mocks.UpdaterMock{}
	s, err := New(updater, Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.runCycle(ctx)
	assert.Empty(t, updater.UpdateCalls())
}

package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := New(zap.NewNop())
	var calls int32
	s.Register("issuance", time.Hour, 0, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	ran, err := s.RunOnce(context.Background(), "issuance")
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestScheduler_RunOnceUnknownJob(t *testing.T) {
	s := New(zap.NewNop())

	_, err := s.RunOnce(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestScheduler_RunOnceReturnsJobError(t *testing.T) {
	s := New(zap.NewNop())
	boom := errors.New("boom")
	s.Register("dispatch", time.Hour, 0, func(ctx context.Context) error { return boom })

	ran, err := s.RunOnce(context.Background(), "dispatch")
	assert.True(t, ran)
	assert.ErrorIs(t, err, boom)
}

func TestScheduler_PanicBecomesError(t *testing.T) {
	s := New(zap.NewNop())
	s.Register("finalization", time.Hour, 0, func(ctx context.Context) error { panic("nil receipt") })

	_, err := s.RunOnce(context.Background(), "finalization")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil receipt")
}

func TestScheduler_SkipsOverlappingRun(t *testing.T) {
	s := New(zap.NewNop())
	entered := make(chan struct{})
	release := make(chan struct{})
	s.Register("dispatch", time.Hour, 0, func(ctx context.Context) error {
		close(entered)
		<-release
		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.RunOnce(context.Background(), "dispatch")
	}()
	<-entered

	ran, err := s.RunOnce(context.Background(), "dispatch")
	require.NoError(t, err)
	assert.False(t, ran)

	close(release)
	<-done
}

func TestScheduler_TimeoutCancelsRun(t *testing.T) {
	s := New(zap.NewNop())
	s.Register("finalization", time.Hour, 20*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	_, err := s.RunOnce(context.Background(), "finalization")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScheduler_LoopKeepsTickingAfterErrors(t *testing.T) {
	s := New(zap.NewNop())
	var calls int32
	s.Register("dispatch", 5*time.Millisecond, 0, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("chain unavailable")
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := atomic.LoadInt32(&calls)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&calls), "no runs after Stop")
}

func TestScheduler_RunStopsOnContextCancel(t *testing.T) {
	s := New(zap.NewNop())
	s.Register("issuance", time.Hour, 0, func(ctx context.Context) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestScheduler_RegisterTwicePanics(t *testing.T) {
	s := New(zap.NewNop())
	s.Register("issuance", time.Second, 0, func(ctx context.Context) error { return nil })

	assert.Panics(t, func() {
		s.Register("issuance", time.Second, 0, func(ctx context.Context) error { return nil })
	})
}

func TestScheduler_RunOnStart(t *testing.T) {
	s := New(zap.NewNop(), WithRunOnStart())
	ran := make(chan struct{}, 1)
	s.Register("issuance", time.Hour, 0, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
}

// Package scheduler runs the background cycles of the custody service on fixed intervals.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/internal/metrics"
)

// ErrUnknownJob is returned by RunOnce for a name that was never registered.
var ErrUnknownJob = errors.New("unknown job")

// JobFunc is one cycle of a background job.
type JobFunc func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	timeout  time.Duration
	fn       JobFunc
	running  sync.Mutex
}

// Scheduler ticks every registered job on its own interval. A tick that
// arrives while the previous run of the same job is still in flight is skipped.
type Scheduler struct {
	logger *zap.Logger
	jobs   map[string]*job
	order  []string

	runOnStart bool

	mu      sync.Mutex
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRunOnStart makes every job run once as soon as its loop starts instead of waiting a full interval.
func WithRunOnStart() Option {
	return func(s *Scheduler) { s.runOnStart = true }
}

// New creates an empty scheduler
func New(logger *zap.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		logger: logger,
		jobs:   make(map[string]*job),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a job. A zero timeout lets a run last until the scheduler stops.
func (s *Scheduler) Register(name string, interval, timeout time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		panic(fmt.Sprintf("scheduler: register %q after start", name))
	}
	if interval <= 0 {
		panic(fmt.Sprintf("scheduler: job %q has non-positive interval", name))
	}
	if _, ok := s.jobs[name]; ok {
		panic(fmt.Sprintf("scheduler: job %q registered twice", name))
	}
	s.jobs[name] = &job{name: name, interval: interval, timeout: timeout, fn: fn}
	s.order = append(s.order, name)
}

// Start launches one loop per job and returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	for _, name := range s.order {
		j := s.jobs[name]
		s.logger.Info("Starting scheduled job",
			zap.String("job", j.name),
			zap.Duration("interval", j.interval))

		s.wg.Add(1)
		go s.loop(ctx, j)
	}
}

// Stop signals every loop to exit and waits for in-flight runs to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

// Run starts the scheduler and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start(ctx)
	<-ctx.Done()
	s.Stop()
	return nil
}

// RunOnce executes the named job immediately, honoring the overlap guard.
// It reports false when a run of the same job was already in flight.
func (s *Scheduler) RunOnce(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return s.execute(ctx, j)
}

func (s *Scheduler) loop(ctx context.Context, j *job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	if s.runOnStart {
		_, _ = s.execute(ctx, j)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			// errors are recorded inside execute and never stop the loop
			_, _ = s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j *job) (bool, error) {
	if !j.running.TryLock() {
		metrics.SchedulerSkipsTotal.WithLabelValues(j.name).Inc()
		s.logger.Debug("Skipping job run, previous run still in flight", zap.String("job", j.name))
		return false, nil
	}
	defer j.running.Unlock()

	runCtx := ctx
	if j.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.invoke(runCtx, j)
	elapsed := time.Since(start)
	metrics.SchedulerRunDuration.WithLabelValues(j.name).Observe(elapsed.Seconds())

	if err != nil {
		metrics.SchedulerRunsTotal.WithLabelValues(j.name, "error").Inc()
		s.logger.Error("Scheduled job failed",
			zap.String("job", j.name),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return true, err
	}
	metrics.SchedulerRunsTotal.WithLabelValues(j.name, "success").Inc()
	s.logger.Debug("Scheduled job completed",
		zap.String("job", j.name),
		zap.Duration("elapsed", elapsed))
	return true, nil
}

// invoke turns a panicking job into an error so one bad cycle cannot kill its loop.
func (s *Scheduler) invoke(ctx context.Context, j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", j.name, r)
		}
	}()
	return j.fn(ctx)
}

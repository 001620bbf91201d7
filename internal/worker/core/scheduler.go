package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of scheduled work. Run returns the number of items
// processed so the scheduler can log run outcomes.
type Job interface {
	Name() string
	Run(ctx context.Context) (int, error)
}

// Scheduler triggers a job at a fixed interval. A tick is skipped when the
// previous run is still in flight, and a failed run delays the next attempt
// by the failure backoff instead of the full interval.
type Scheduler struct {
	job      Job
	interval time.Duration
	backoff  time.Duration
	reporter *StatusReporter
	logger   *zap.Logger

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewScheduler creates a scheduler for the given job. The failure backoff
// should be shorter than the interval so failed runs retry sooner.
func NewScheduler(
	job Job, interval, failureBackoff time.Duration, reporter *StatusReporter, logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		job:      job,
		interval: interval,
		backoff:  failureBackoff,
		reporter: reporter,
		logger:   logger.Named("scheduler"),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the scheduling loop until the context is cancelled or Stop is
// called. The job runs once immediately, then on each interval tick.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		defer close(s.done)

		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Context cancelled, stopping scheduler")
				return
			case <-s.stopChan:
				s.logger.Info("Stop requested, stopping scheduler")
				return
			case <-timer.C:
				timer.Reset(s.runOnce(ctx))
			}
		}
	}()
}

// Stop signals the loop to exit and waits for the current run to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	<-s.done
}

// runOnce executes the job if no run is in flight and returns the delay
// until the next attempt.
func (s *Scheduler) runOnce(ctx context.Context) time.Duration {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("Previous run still in flight, skipping tick",
			zap.String("job", s.job.Name()))

		return s.interval
	}
	defer s.running.Store(false)

	if s.reporter != nil {
		s.reporter.UpdateStatus("Running "+s.job.Name(), 0)
	}

	start := time.Now()

	processed, err := s.job.Run(ctx)
	if err != nil {
		s.logger.Error("Run failed",
			zap.String("job", s.job.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))

		if s.reporter != nil {
			s.reporter.SetHealthy(false)
		}

		return s.backoff
	}

	s.logger.Info("Run completed",
		zap.String("job", s.job.Name()),
		zap.Int("processed", processed),
		zap.Duration("elapsed", time.Since(start)))

	if s.reporter != nil {
		s.reporter.SetHealthy(true)
		s.reporter.UpdateStatus("Idle", 100)
	}

	return s.interval
}

package core_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brkuhgk/Nestara/internal/worker/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errRun = errors.New("run failed")

type countingJob struct {
	runs    atomic.Int32
	block   chan struct{}
	failing atomic.Bool
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(_ context.Context) (int, error) {
	j.runs.Add(1)

	if j.block != nil {
		<-j.block
	}

	if j.failing.Load() {
		return 0, errRun
	}

	return 1, nil
}

func TestSchedulerRunsImmediatelyAndOnInterval(t *testing.T) {
	t.Parallel()

	job := &countingJob{}
	scheduler := core.NewScheduler(job, 20*time.Millisecond, 5*time.Millisecond, nil, zap.NewNop())

	scheduler.Start(t.Context())

	require.Eventually(t, func() bool {
		return job.runs.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	scheduler.Stop()
}

func TestSchedulerStopHaltsRuns(t *testing.T) {
	t.Parallel()

	job := &countingJob{}
	scheduler := core.NewScheduler(job, 10*time.Millisecond, 5*time.Millisecond, nil, zap.NewNop())

	scheduler.Start(t.Context())

	require.Eventually(t, func() bool {
		return job.runs.Load() >= 1
	}, 2*time.Second, time.Millisecond)

	scheduler.Stop()

	after := job.runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, job.runs.Load())
}

func TestSchedulerRetriesFailuresWithBackoff(t *testing.T) {
	t.Parallel()

	job := &countingJob{}
	job.failing.Store(true)

	// Interval far longer than the test; only the backoff can drive retries
	scheduler := core.NewScheduler(job, time.Hour, 10*time.Millisecond, nil, zap.NewNop())

	scheduler.Start(t.Context())

	require.Eventually(t, func() bool {
		return job.runs.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	scheduler.Stop()
}

type overlapJob struct {
	mu         sync.Mutex
	inFlight   int
	maxSeen    int
	totalRuns  int
	runLatency time.Duration
}

func (j *overlapJob) Name() string { return "overlap" }

func (j *overlapJob) Run(_ context.Context) (int, error) {
	j.mu.Lock()
	j.inFlight++
	j.totalRuns++

	if j.inFlight > j.maxSeen {
		j.maxSeen = j.inFlight
	}
	j.mu.Unlock()

	time.Sleep(j.runLatency)

	j.mu.Lock()
	j.inFlight--
	j.mu.Unlock()

	return 0, nil
}

func TestSchedulerNeverOverlapsRuns(t *testing.T) {
	t.Parallel()

	job := &overlapJob{runLatency: 30 * time.Millisecond}
	scheduler := core.NewScheduler(job, 5*time.Millisecond, time.Millisecond, nil, zap.NewNop())

	scheduler.Start(t.Context())

	require.Eventually(t, func() bool {
		job.mu.Lock()
		defer job.mu.Unlock()

		return job.totalRuns >= 2
	}, 2*time.Second, 5*time.Millisecond)

	scheduler.Stop()

	job.mu.Lock()
	defer job.mu.Unlock()
	assert.Equal(t, 1, job.maxSeen)
}

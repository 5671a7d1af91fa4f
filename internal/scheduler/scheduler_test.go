package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRunner struct {
	mu   sync.Mutex
	runs int
	err  error
	ran  chan struct{}
}

func newCountingRunner(err error) *countingRunner {
	return &countingRunner{err: err, ran: make(chan struct{}, 8)}
}

func (r *countingRunner) Run(ctx context.Context) error {
	r.mu.Lock()
	r.runs++
	r.mu.Unlock()
	select {
	case r.ran <- struct{}{}:
	default:
	}
	return r.err
}

func (r *countingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

func waitForRun(t *testing.T, r *countingRunner) {
	t.Helper()
	select {
	case <-r.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a scheduled run")
	}
}

func TestSchedulerRunsOnInterval(t *testing.T) {
	runner := newCountingRunner(nil)
	s := New(runner, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Start(context.Background())
		close(done)
	}()

	waitForRun(t, runner)
	waitForRun(t, runner)

	s.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.GreaterOrEqual(t, runner.count(), 2)
}

func TestSchedulerKeepsTickingAfterFailedRun(t *testing.T) {
	runner := newCountingRunner(errors.New("upstream exploded"))
	s := New(runner, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Start(context.Background())
		close(done)
	}()

	waitForRun(t, runner)
	waitForRun(t, runner)

	s.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.GreaterOrEqual(t, runner.count(), 2)
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	runner := newCountingRunner(nil)
	s := New(runner, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not observe context cancellation")
	}
	assert.Equal(t, 0, runner.count())
}

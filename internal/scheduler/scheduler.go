package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Runner is anything the scheduler can trigger periodically.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler runs the pipeline on a fixed interval.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	stop     chan struct{}
}

func New(r Runner, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:   r,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the periodic runs. Blocks until Stop is called or the context
// is cancelled. A failed run is logged and never stops the loop.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("scheduler started", "interval", s.interval)

	for {
		select {
		case <-ticker.C:
			slog.Info("scheduler: triggering run")
			if err := s.runner.Run(ctx); err != nil {
				slog.Error("scheduler: run failed", "error", err)
			}
		case <-s.stop:
			slog.Info("scheduler stopped")
			return
		case <-ctx.Done():
			slog.Info("scheduler context cancelled")
			return
		}
	}
}

// Stop signals the scheduler to stop.
func (s *Scheduler) Stop() {
	close(s.stop)
}

package status

import (
	"sync"
	"time"

	"github.com/spacepage/spacepage/internal/model"
)

// Tracker holds the most recent run report in memory. It is the only state
// shared between the pipeline and the status API.
type Tracker struct {
	mu     sync.RWMutex
	report *model.RunReport
}

func New() *Tracker {
	return &Tracker{}
}

// Record stores the report of a completed run.
func (t *Tracker) Record(report model.RunReport) {
	report.Sources = append([]model.SourceResult(nil), report.Sources...)
	t.mu.Lock()
	t.report = &report
	t.mu.Unlock()
}

// Latest returns a copy of the most recent report, or nil before the first
// completed run.
func (t *Tracker) Latest() *model.RunReport {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.report == nil {
		return nil
	}
	out := *t.report
	out.Sources = append([]model.SourceResult(nil), t.report.Sources...)
	return &out
}

// LastUpdate returns when the last run finished, or the zero time before the
// first completed run.
func (t *Tracker) LastUpdate() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.report == nil {
		return time.Time{}
	}
	return t.report.FinishedAt
}

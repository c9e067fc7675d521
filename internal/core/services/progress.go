package services

import (
	"sync"
	"sync/atomic"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// progressTracker is the progress state of a single run.
// Emissions are serialised so observers see completed values 1..total in order,
// even when documents finish concurrently.
type progressTracker struct {
	mu        sync.Mutex
	total     int
	completed atomic.Int64
	observer  domain.ProgressFunc
}

func newProgressTracker(total int, observer domain.ProgressFunc) *progressTracker {
	return &progressTracker{total: total, observer: observer}
}

// advance records one processed document and notifies the observer.
func (t *progressTracker) advance() domain.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := domain.Progress{
		Completed: int(t.completed.Add(1)),
		Total:     t.total,
	}
	if t.observer != nil {
		t.observer(p)
	}
	return p
}

// snapshot returns the current state without blocking on observers.
func (t *progressTracker) snapshot() domain.Progress {
	return domain.Progress{
		Completed: int(t.completed.Load()),
		Total:     t.total,
	}
}

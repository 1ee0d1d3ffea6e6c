// Package pipeline runs batch operations over leads: personalization,
// renaming, enrichment from websites and CSV imports. It coordinates the
// collaborators defined in the root package and never talks to a backend
// directly.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultConcurrency is the worker count used when none is configured.
const DefaultConcurrency = 10

// ProgressEvent reports progress during a batch operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	LeadID    int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

func (f ProgressFunc) emit(event ProgressEvent) {
	if f != nil {
		f(event)
	}
}

// Throttle spaces sequential calls at least a fixed delay apart.
// The first call never waits.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle returns a Throttle allowing one call per delay.
// A delay of zero or less disables throttling.
func NewThrottle(delay time.Duration) *Throttle {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Throttle{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next call is allowed.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

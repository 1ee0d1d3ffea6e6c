package coldlead

import (
	"context"
	"time"
)

// RunKind identifies what a recorded run did.
type RunKind string

// RunKind constants.
const (
	RunExport      RunKind = "export"
	RunPersonalize RunKind = "personalize"
)

// Run records one batch pass over the leads and its outcome.
type Run struct {
	ID         string    `json:"id"`
	Kind       RunKind   `json:"kind"`
	Model      string    `json:"model"`
	Total      int       `json:"total"`
	Completed  int       `json:"completed"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Finished reports whether the run has completed.
func (r *Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// RunService records batch runs and the rows they exported.
type RunService interface {
	// CreateRun records a new run and sets its ID and StartedAt.
	CreateRun(ctx context.Context, run *Run) error

	// FinishRun stores the final counts and sets FinishedAt.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, id string, completed, failed int) (*Run, error)

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// SaveRows stores the export rows produced by a run.
	SaveRows(ctx context.Context, runID string, rows []*ExportRow) error

	// FindRows retrieves the rows of a run ordered by lead ID.
	FindRows(ctx context.Context, runID string) ([]*ExportRow, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Kind *RunKind `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

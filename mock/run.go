package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var _ coldlead.RunService = (*RunService)(nil)

// RunService is a mock implementation of coldlead.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *coldlead.Run) error
	FinishRunFn   func(ctx context.Context, id string, completed, failed int) (*coldlead.Run, error)
	FindRunByIDFn func(ctx context.Context, id string) (*coldlead.Run, error)
	FindRunsFn    func(ctx context.Context, filter coldlead.RunFilter) ([]*coldlead.Run, error)
	SaveRowsFn    func(ctx context.Context, runID string, rows []*coldlead.ExportRow) error
	FindRowsFn    func(ctx context.Context, runID string) ([]*coldlead.ExportRow, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *coldlead.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, id string, completed, failed int) (*coldlead.Run, error) {
	return s.FinishRunFn(ctx, id, completed, failed)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*coldlead.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter coldlead.RunFilter) ([]*coldlead.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) SaveRows(ctx context.Context, runID string, rows []*coldlead.ExportRow) error {
	return s.SaveRowsFn(ctx, runID, rows)
}

func (s *RunService) FindRows(ctx context.Context, runID string) ([]*coldlead.ExportRow, error) {
	return s.FindRowsFn(ctx, runID)
}

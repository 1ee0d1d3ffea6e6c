package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arcigy/coldlead"
	main "github.com/arcigy/coldlead/cmd/coldlead"
	"github.com/arcigy/coldlead/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs with status", func(t *testing.T) {
		t.Parallel()

		started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, filter coldlead.RunFilter) ([]*coldlead.Run, error) {
					assert.Equal(t, 20, filter.Limit)
					return []*coldlead.Run{
						{ID: "run-2", Kind: coldlead.RunPersonalize, Model: "gemini-2.0-flash", Total: 10, StartedAt: started},
						{ID: "run-1", Kind: coldlead.RunExport, Total: 10, Completed: 10, StartedAt: started, FinishedAt: started.Add(time.Second)},
					}, nil
				},
			},
		}

		err := (&main.RunsListCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "run-2")
		assert.Contains(t, output, "unfinished")
		assert.Contains(t, output, "10/10 ok, 0 failed")
	})

	t.Run("shows helpful message when no runs exist", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, _ coldlead.RunFilter) ([]*coldlead.Run, error) {
					return nil, nil
				},
			},
		}

		err := (&main.RunsListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs recorded")
	})
}

func TestRunsExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes stored rows", func(t *testing.T) {
		t.Parallel()

		output := filepath.Join(t.TempDir(), "run.csv")
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunByIDFn: func(_ context.Context, id string) (*coldlead.Run, error) {
					return &coldlead.Run{ID: id}, nil
				},
				FindRowsFn: func(_ context.Context, _ string) ([]*coldlead.ExportRow, error) {
					return []*coldlead.ExportRow{{ID: 1, OriginalTitle: "Okná", FinalCompanyName: "Okna"}}, nil
				},
			},
		}

		err := (&main.RunsExportCmd{ID: "run-1", Output: output}).Run(deps)

		require.NoError(t, err)
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(data), "1,Okná,,Okna,")
	})

	t.Run("reports unknown run", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs: &mock.RunService{
				FindRunByIDFn: func(_ context.Context, id string) (*coldlead.Run, error) {
					return nil, coldlead.Errorf(coldlead.ENOTFOUND, "run %q not found", id)
				},
			},
		}

		err := (&main.RunsExportCmd{ID: "nope", Output: filepath.Join(t.TempDir(), "run.csv")}).Run(deps)

		assert.Equal(t, coldlead.ENOTFOUND, coldlead.ErrorCode(err))
		assert.Contains(t, stderr.String(), `error: run "nope" not found`)
	})
}

package sqlite_test

import (
	"context"
	"testing"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func createRun(t *testing.T, svc *sqlite.RunService, kind coldlead.RunKind) *coldlead.Run {
	t.Helper()
	run := &coldlead.Run{Kind: kind, Model: "gemini-2.0-flash", Total: 2}
	require.NoError(t, svc.CreateRun(context.Background(), run))
	return run
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID and start time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		run := createRun(t, svc, coldlead.RunPersonalize)

		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())
		assert.False(t, run.Finished())
	})

	t.Run("requires kind", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &coldlead.Run{})

		require.Error(t, err)
		assert.Equal(t, coldlead.EINVALID, coldlead.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		run := createRun(t, svc, coldlead.RunPersonalize)

		found, err := svc.FindRunByID(context.Background(), run.ID)

		require.NoError(t, err)
		assert.Equal(t, run.ID, found.ID)
		assert.Equal(t, coldlead.RunPersonalize, found.Kind)
		assert.Equal(t, "gemini-2.0-flash", found.Model)
		assert.Equal(t, 2, found.Total)
		assert.True(t, run.StartedAt.Equal(found.StartedAt))
		assert.True(t, found.FinishedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		_, err := svc.FindRunByID(context.Background(), "missing")

		assert.Equal(t, coldlead.ENOTFOUND, coldlead.ErrorCode(err))
	})
}

func TestRunService_FinishRun(t *testing.T) {
	t.Parallel()

	t.Run("stores counts and finish time", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(setupTestDB(t))
		run := createRun(t, svc, coldlead.RunPersonalize)

		finished, err := svc.FinishRun(ctx, run.ID, 1, 1)
		require.NoError(t, err)
		assert.True(t, finished.Finished())

		found, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, found.Completed)
		assert.Equal(t, 1, found.Failed)
		assert.True(t, found.Finished())
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		_, err := svc.FinishRun(context.Background(), "missing", 0, 0)

		assert.Equal(t, coldlead.ENOTFOUND, coldlead.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		first := createRun(t, svc, coldlead.RunExport)
		second := createRun(t, svc, coldlead.RunPersonalize)

		runs, err := svc.FindRuns(context.Background(), coldlead.RunFilter{})

		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, second.ID, runs[0].ID)
		assert.Equal(t, first.ID, runs[1].ID)
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		createRun(t, svc, coldlead.RunExport)
		personalize := createRun(t, svc, coldlead.RunPersonalize)

		kind := coldlead.RunPersonalize
		runs, err := svc.FindRuns(context.Background(), coldlead.RunFilter{Kind: &kind})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, personalize.ID, runs[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		first := createRun(t, svc, coldlead.RunExport)
		createRun(t, svc, coldlead.RunExport)
		createRun(t, svc, coldlead.RunExport)

		runs, err := svc.FindRuns(context.Background(), coldlead.RunFilter{Limit: 1, Offset: 2})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, first.ID, runs[0].ID)

		runs, err = svc.FindRuns(context.Background(), coldlead.RunFilter{Offset: 1})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}

func TestRunService_Rows(t *testing.T) {
	t.Parallel()

	t.Run("saves and finds rows ordered by lead ID", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(setupTestDB(t))
		run := createRun(t, svc, coldlead.RunPersonalize)

		rows := []*coldlead.ExportRow{
			{ID: 9, OriginalTitle: "Okná Novák s.r.o.", FinalCompanyName: "Okna Novak", AIFirstSentence: "Dobrý deň."},
			{ID: 2, OriginalTitle: "Plynár Bratislava", FinalCompanyName: "Plynár", City: "Bratislava"},
		}
		require.NoError(t, svc.SaveRows(ctx, run.ID, rows))

		found, err := svc.FindRows(ctx, run.ID)

		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, rows[1], found[0])
		assert.Equal(t, rows[0], found[1])
	})

	t.Run("replaces row saved twice", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(setupTestDB(t))
		run := createRun(t, svc, coldlead.RunPersonalize)

		require.NoError(t, svc.SaveRows(ctx, run.ID, []*coldlead.ExportRow{{ID: 1, FinalCompanyName: "A"}}))
		require.NoError(t, svc.SaveRows(ctx, run.ID, []*coldlead.ExportRow{{ID: 1, FinalCompanyName: "B"}}))

		found, err := svc.FindRows(ctx, run.ID)

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "B", found[0].FinalCompanyName)
	})

	t.Run("keeps rows of runs apart", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(setupTestDB(t))
		a := createRun(t, svc, coldlead.RunPersonalize)
		b := createRun(t, svc, coldlead.RunPersonalize)

		require.NoError(t, svc.SaveRows(ctx, a.ID, []*coldlead.ExportRow{{ID: 1}}))

		found, err := svc.FindRows(ctx, b.ID)

		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.SaveRows(ctx, "missing", []*coldlead.ExportRow{{ID: 1}})
		assert.Equal(t, coldlead.ENOTFOUND, coldlead.ErrorCode(err))

		_, err = svc.FindRows(ctx, "missing")
		assert.Equal(t, coldlead.ENOTFOUND, coldlead.ErrorCode(err))
	})
}

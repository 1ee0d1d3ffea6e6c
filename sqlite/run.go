package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arcigy/coldlead"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coldlead.RunService = (*RunService)(nil)

// RunService implements coldlead.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a new run.
func (s *RunService) CreateRun(ctx context.Context, run *coldlead.Run) error {
	if run.Kind == "" {
		return coldlead.Errorf(coldlead.EINVALID, "run kind required")
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC().Truncate(time.Second)
	run.FinishedAt = time.Time{}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, kind, model, total, completed, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, '')
	`, run.ID, string(run.Kind), run.Model, run.Total, run.Completed, run.Failed,
		formatTime(run.StartedAt))

	return err
}

// FinishRun stores the final counts of a run.
func (s *RunService) FinishRun(ctx context.Context, id string, completed, failed int) (*coldlead.Run, error) {
	run, err := s.FindRunByID(ctx, id)
	if err != nil {
		return nil, err
	}

	run.Completed = completed
	run.Failed = failed
	run.FinishedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE runs
		SET completed = ?, failed = ?, finished_at = ?
		WHERE id = ?
	`, run.Completed, run.Failed, formatTime(run.FinishedAt), id)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*coldlead.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, model, total, completed, failed, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, coldlead.Errorf(coldlead.ENOTFOUND, "run not found")
	}
	return run, err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter coldlead.RunFilter) ([]*coldlead.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, model, total, completed, failed, started_at, finished_at FROM runs WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*coldlead.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// SaveRows stores the rows of a run in a single transaction. Saving a row
// for a lead that already has one in the run replaces it.
func (s *RunService) SaveRows(ctx context.Context, runID string, rows []*coldlead.ExportRow) error {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO run_rows (run_id, lead_id, original_title, website, final_company_name,
			ai_first_sentence, email, phone, city, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, runID, r.ID, r.OriginalTitle, r.Website, r.FinalCompanyName,
			r.AIFirstSentence, r.Email, r.Phone, r.City, r.Category); err != nil {
			return fmt.Errorf("failed to save row %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// FindRows retrieves the rows of a run ordered by lead ID.
func (s *RunService) FindRows(ctx context.Context, runID string) ([]*coldlead.ExportRow, error) {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT lead_id, original_title, website, final_company_name, ai_first_sentence,
			email, phone, city, category
		FROM run_rows
		WHERE run_id = ?
		ORDER BY lead_id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*coldlead.ExportRow
	for rows.Next() {
		var r coldlead.ExportRow
		if err := rows.Scan(&r.ID, &r.OriginalTitle, &r.Website, &r.FinalCompanyName, &r.AIFirstSentence,
			&r.Email, &r.Phone, &r.City, &r.Category); err != nil {
			return nil, err
		}
		result = append(result, &r)
	}

	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*coldlead.Run, error) {
	var run coldlead.Run
	var kind, startedAt, finishedAt string

	if err := s.Scan(&run.ID, &kind, &run.Model, &run.Total, &run.Completed, &run.Failed,
		&startedAt, &finishedAt); err != nil {
		return nil, err
	}
	run.Kind = coldlead.RunKind(kind)

	var err error
	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &run, nil
}

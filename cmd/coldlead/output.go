package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/csv"
	"github.com/arcigy/coldlead/excelize"
	"github.com/arcigy/coldlead/fs"
	"github.com/arcigy/coldlead/pipeline"
)

// checkExportPath fails early for outputs no writer can produce.
func checkExportPath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		return nil
	}
	return coldlead.Errorf(coldlead.EINVALID, "unsupported output %q: use a .csv or .xlsx file", path)
}

func newExportWriter(path string, w io.Writer) coldlead.ExportWriter {
	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return excelize.NewWriter(w)
	}
	return csv.NewWriter(w)
}

// writeExport writes rows to path, replacing it only once all rows are
// written.
func writeExport(deps *Dependencies, path string, rows []*coldlead.ExportRow) error {
	if err := checkExportPath(path); err != nil {
		return err
	}

	f, err := fs.CreateAtomic(path)
	if err != nil {
		return err
	}
	if err := newExportWriter(path, f).WriteRows(deps.Ctx, rows); err != nil {
		_ = f.Abort()
		return err
	}
	return f.Commit()
}

// loadLeads reads every lead from a JSON dump when input is set and from the
// lead store otherwise.
func loadLeads(deps *Dependencies, input string) ([]*coldlead.Lead, error) {
	var r coldlead.LeadReader = deps.Leads
	if input != "" {
		r = fs.NewLeadFile(input)
	}
	return r.FindLeads(deps.Ctx, coldlead.LeadFilter{})
}

// progressPrinter reports every nth processed lead and every failure.
func progressPrinter(deps *Dependencies, every int) pipeline.ProgressFunc {
	return func(e pipeline.ProgressEvent) {
		switch e.Type {
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "Lead %d failed: %v\n", e.LeadID, e.Error)
		case pipeline.ProgressCompleted:
		default:
			return
		}
		if every > 0 && e.Completed%every == 0 {
			fmt.Fprintf(deps.Stdout, "Processed %d/%d leads...\n", e.Completed, e.Total)
		}
	}
}

// fail prints err the way every command reports errors and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", coldlead.ErrorMessage(err))
	return err
}

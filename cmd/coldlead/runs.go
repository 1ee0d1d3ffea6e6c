package main

import (
	"fmt"
	"time"

	"github.com/arcigy/coldlead"
)

// Run executes the runs list command.
func (c *RunsListCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, coldlead.RunFilter{Limit: c.Limit})
	if err != nil {
		return fail(deps, err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'coldlead personalize' to create one.")
		return nil
	}

	for _, r := range runs {
		status := fmt.Sprintf("%d/%d ok, %d failed", r.Completed, r.Total, r.Failed)
		if !r.Finished() {
			status = "unfinished"
		}
		model := r.Model
		if model == "" {
			model = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-11s  %s  %-20s  %s\n",
			r.ID, r.Kind, r.StartedAt.Local().Format(time.DateTime), model, status)
	}
	return nil
}

// Run executes the runs export command.
func (c *RunsExportCmd) Run(deps *Dependencies) error {
	if err := checkExportPath(c.Output); err != nil {
		return fail(deps, err)
	}

	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}

	rows, err := deps.Runs.FindRows(deps.Ctx, run.ID)
	if err != nil {
		return fail(deps, err)
	}

	if err := writeExport(deps, c.Output, rows); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rows of run %s to %s\n", len(rows), run.ID, c.Output)
	return nil
}

package main

import (
	"fmt"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/pipeline"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	if err := checkExportPath(c.Output); err != nil {
		return fail(deps, err)
	}

	leads, err := loadLeads(deps, c.Input)
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Processing %d leads...\n", len(leads))

	result, err := (&pipeline.Processor{}).Process(deps.Ctx, leads, nil)
	if err != nil {
		return fail(deps, err)
	}

	if err := writeExport(deps, c.Output, result.Rows); err != nil {
		return fail(deps, err)
	}

	if deps.Runs != nil {
		if err := recordRun(deps, coldlead.RunExport, "", result); err != nil {
			return fail(deps, err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rows to %s\n", len(result.Rows), c.Output)
	for _, row := range result.Rows[:min(2, len(result.Rows))] {
		fmt.Fprintf(deps.Stdout, "Sample: %s -> %s\n", row.FinalCompanyName, row.AIFirstSentence)
	}
	return nil
}

// recordRun stores a finished batch and its rows.
func recordRun(deps *Dependencies, kind coldlead.RunKind, model string, result *pipeline.Result) error {
	run := &coldlead.Run{Kind: kind, Model: model, Total: len(result.Rows)}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		return err
	}
	if err := deps.Runs.SaveRows(deps.Ctx, run.ID, result.Rows); err != nil {
		return err
	}
	if _, err := deps.Runs.FinishRun(deps.Ctx, run.ID, result.Completed, result.Failed); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Recorded run %s\n", run.ID)
	return nil
}

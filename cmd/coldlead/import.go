package main

import (
	"fmt"
	"os"

	"github.com/arcigy/coldlead/csv"
	"github.com/arcigy/coldlead/pipeline"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fail(deps, err)
	}
	defer f.Close()

	rows, err := csv.ReadLeads(f)
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Read %d rows from %s\n", len(rows), c.File)

	im := &pipeline.Importer{
		Leads:     deps.Leads,
		Terms:     c.Terms,
		ListName:  c.List,
		UserEmail: c.UserEmail,
		DryRun:    c.DryRun,
	}
	if c.All {
		im.Terms = nil
	}

	result, err := im.Import(deps.Ctx, rows, progressPrinter(deps, 0))
	if err != nil {
		return fail(deps, err)
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Dry run: %d rows match.\n", result.Matched)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Processed %d matching rows: %d created, %d updated, %d failed.\n",
		result.Matched, result.Created, result.Updated, result.Failed)
	return nil
}

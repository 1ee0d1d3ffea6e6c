package main

import (
	"fmt"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/pipeline"
)

// Run executes the rename command.
func (c *RenameCmd) Run(deps *Dependencies) error {
	leads, err := deps.Leads.FindLeads(deps.Ctx, coldlead.LeadFilter{
		HasWebsite: true,
		Limit:      c.Limit,
	})
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Found %d leads with websites.\n", len(leads))

	r := &pipeline.Renamer{
		Names:  deps.Names,
		Leads:  deps.Leads,
		Delay:  c.Delay,
		DryRun: c.DryRun,
	}
	result, err := r.Rename(deps.Ctx, leads, progressPrinter(deps, 0))
	if err != nil {
		return fail(deps, err)
	}

	for _, rn := range result.Renames {
		fmt.Fprintf(deps.Stdout, "ID %d: '%s' -> '%s' (%s)\n", rn.LeadID, rn.OldName, rn.NewName, rn.Website)
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Dry run: %d leads would be updated.\n", len(result.Renames))
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Updated %d leads.\n", result.Updated)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Failed %d leads.\n", result.Failed)
	}
	return nil
}

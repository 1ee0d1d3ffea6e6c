package main

import (
	"fmt"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/fs"
)

// Run executes the pull command.
func (c *PullCmd) Run(deps *Dependencies) error {
	leads, err := deps.Leads.FindLeads(deps.Ctx, coldlead.LeadFilter{})
	if err != nil {
		return fail(deps, err)
	}

	if err := fs.WriteLeads(c.Output, leads); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d leads to %s\n", len(leads), c.Output)
	return nil
}

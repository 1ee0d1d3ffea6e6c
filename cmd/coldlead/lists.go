package main

import (
	"fmt"

	"github.com/arcigy/coldlead/pipeline"
)

// Run executes the lists assign command.
func (c *ListsAssignCmd) Run(deps *Dependencies) error {
	result, err := pipeline.AssignList(deps.Ctx, deps.Lists, deps.Leads, c.Name)
	if err != nil {
		return fail(deps, err)
	}

	if result.Created {
		fmt.Fprintf(deps.Stdout, "Created list %q.\n", c.Name)
	} else {
		fmt.Fprintf(deps.Stdout, "List %q already exists.\n", c.Name)
	}
	fmt.Fprintf(deps.Stdout, "Assigned %d leads to %q.\n", result.Assigned, c.Name)
	return nil
}

// Run executes the lists move-jobs command.
func (c *ListsMoveJobsCmd) Run(deps *Dependencies) error {
	moved, err := pipeline.MoveJobs(deps.Ctx, deps.Leads, c.Jobs, c.List)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Moved %d leads to %q.\n", moved, c.List)
	return nil
}

package main

import (
	"fmt"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/pipeline"
)

// Run executes the enrich command.
func (c *EnrichCmd) Run(deps *Dependencies) error {
	leads, err := deps.Leads.FindLeads(deps.Ctx, coldlead.LeadFilter{
		HasWebsite:      true,
		MissingAbstract: true,
		Limit:           c.Limit,
	})
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Found %d leads without an abstract.\n", len(leads))

	e := &pipeline.Enricher{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Leads:       deps.Leads,
		Concurrency: c.Concurrency,
		Timeout:     c.Timeout,
		DryRun:      c.DryRun,
	}
	result, err := e.Enrich(deps.Ctx, leads, progressPrinter(deps, progressEvery))
	if err != nil {
		return fail(deps, err)
	}

	for _, en := range result.Enrichments {
		fmt.Fprintf(deps.Stdout, "ID %d: %s\n", en.LeadID, pipeline.Truncate(en.Abstract, 80))
	}
	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Dry run: %d abstracts found.\n", len(result.Enrichments))
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Updated %d leads, skipped %d, failed %d.\n", result.Updated, result.Skipped, result.Failed)
	return nil
}

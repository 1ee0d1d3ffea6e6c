package main

import (
	"fmt"
	"strings"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/pipeline"
)

// Run executes the names command.
func (c *NamesCmd) Run(deps *Dependencies) error {
	leads, err := deps.Leads.FindLeads(deps.Ctx, coldlead.LeadFilter{
		HasWebsite: true,
		Fields:     []string{"id", "title", "website", "company_name_reworked"},
		Limit:      c.Limit,
	})
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "%-40s | %-40s | %s\n", "CURRENT NAME", "DOMAIN NAME", "WEBSITE")
	fmt.Fprintln(deps.Stdout, strings.Repeat("-", 120))

	var shown int
	for _, lead := range leads {
		if shown >= c.Rows {
			break
		}
		name := coldlead.ExtractDomainName(lead.Website)
		if name == "" || name == lead.CompanyName {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%-40s | %-40s | %s\n",
			pipeline.Truncate(lead.CompanyName, 40),
			pipeline.Truncate(name, 40),
			lead.Website,
		)
		shown++
	}

	if shown == 0 {
		fmt.Fprintln(deps.Stdout, "All names already match their domains.")
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/pipeline"
)

// progressEvery is how many leads pass between progress lines.
const progressEvery = 50

// Run executes the personalize command.
func (c *PersonalizeCmd) Run(deps *Dependencies) error {
	if c.Estimate {
		return c.estimate(deps)
	}
	if err := checkExportPath(c.Output); err != nil {
		return fail(deps, err)
	}

	leads, err := loadLeads(deps, c.Input)
	if err != nil {
		return fail(deps, err)
	}

	generator := deps.Sentences
	if !c.NoCache && deps.Cache != nil {
		generator = &pipeline.CachedGenerator{Next: generator, Cache: deps.Cache, Model: deps.Model}
	}

	run := &coldlead.Run{Kind: coldlead.RunPersonalize, Model: deps.Model, Total: len(leads)}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d leads. Starting AI processing...\n", len(leads))
	start := time.Now()

	p := &pipeline.Processor{
		Generator:   generator,
		Concurrency: c.Concurrency,
		Delay:       c.Delay,
		Timeout:     c.Timeout,
	}
	result, err := p.Process(deps.Ctx, leads, progressPrinter(deps, progressEvery))
	if err != nil {
		return fail(deps, err)
	}

	if err := deps.Runs.SaveRows(deps.Ctx, run.ID, result.Rows); err != nil {
		return fail(deps, err)
	}
	if _, err := deps.Runs.FinishRun(deps.Ctx, run.ID, result.Completed, result.Failed); err != nil {
		return fail(deps, err)
	}

	if err := writeExport(deps, c.Output, result.Rows); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Done! Created %s in %.2f seconds (%d generated, %d fallback). Run %s\n",
		c.Output, time.Since(start).Seconds(), result.Completed, result.Failed, run.ID)
	return nil
}

// estimate counts the prompt tokens a personalize run would send.
func (c *PersonalizeCmd) estimate(deps *Dependencies) error {
	leads, err := loadLeads(deps, c.Input)
	if err != nil {
		return fail(deps, err)
	}

	var total int
	for _, lead := range leads {
		req := coldlead.NewSentenceRequest(lead, coldlead.ResolveName(lead))
		n, err := deps.Estimator.EstimateSentence(deps.Ctx, req)
		if err != nil {
			return fail(deps, err)
		}
		total += n
	}

	fmt.Fprintf(deps.Stdout, "%d leads, %s of prompt", len(leads), pipeline.FormatTokens(total))
	if len(leads) > 0 {
		fmt.Fprintf(deps.Stdout, " (%s per lead)", pipeline.FormatTokens(total/len(leads)))
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

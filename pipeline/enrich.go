package pipeline

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/arcigy/coldlead"
	"golang.org/x/sync/errgroup"
)

// Enricher fills in missing abstracts from the description each lead's
// website publishes about itself.
type Enricher struct {
	Fetcher   coldlead.Fetcher
	Extractor coldlead.DescriptionExtractor
	Leads     coldlead.LeadService

	// Concurrency bounds the number of websites fetched at once.
	// Zero means DefaultConcurrency.
	Concurrency int

	// Timeout bounds a single fetch. Zero means no limit.
	Timeout time.Duration

	// DryRun extracts descriptions without writing them.
	DryRun bool
}

// Enrichment is the description found for one lead.
type Enrichment struct {
	LeadID   int
	Website  string
	Abstract string
}

// EnrichResult holds the outcome of an enrichment batch.
type EnrichResult struct {
	Enrichments []*Enrichment
	Updated     int
	// Skipped counts leads with no website, an abstract already set or a
	// page without a description.
	Skipped int
	Failed  int
}

type enrichResult struct {
	leadID     int
	enrichment *Enrichment
	skipped    bool
	err        error
}

// Enrich processes leads through a bounded worker pool. A failed lead never
// aborts the batch; an error is returned only when ctx is canceled.
func (e *Enricher) Enrich(ctx context.Context, leads []*coldlead.Lead, progress ProgressFunc) (*EnrichResult, error) {
	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(leads)
	resultCh := make(chan enrichResult, total)

	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, lead := range leads {
			g.Go(func() error {
				resultCh <- e.enrich(gctx, lead)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &EnrichResult{}
	var completed int
	for r := range resultCh {
		completed++
		event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, LeadID: r.leadID}

		switch {
		case r.err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		case r.skipped:
			result.Skipped++
		default:
			result.Enrichments = append(result.Enrichments, r.enrichment)
			if !e.DryRun {
				result.Updated++
			}
		}
		progress.emit(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(result.Enrichments, func(a, b *Enrichment) int {
		return cmp.Compare(a.LeadID, b.LeadID)
	})

	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

func (e *Enricher) enrich(ctx context.Context, lead *coldlead.Lead) enrichResult {
	result := enrichResult{leadID: lead.ID}
	if strings.TrimSpace(lead.Website) == "" || strings.TrimSpace(lead.Abstract) != "" {
		result.skipped = true
		return result
	}

	fetchCtx := ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	html, err := e.Fetcher.Fetch(fetchCtx, lead.Website)
	if err != nil {
		result.err = fmt.Errorf("fetch %s: %w", lead.Website, err)
		return result
	}

	abstract, err := e.Extractor.ExtractDescription(html)
	if coldlead.ErrorCode(err) == coldlead.ENOTFOUND {
		result.skipped = true
		return result
	} else if err != nil {
		result.err = err
		return result
	}

	if !e.DryRun {
		if _, err := e.Leads.UpdateLead(ctx, lead.ID, coldlead.LeadUpdate{Abstract: &abstract}); err != nil {
			result.err = err
			return result
		}
	}

	result.enrichment = &Enrichment{LeadID: lead.ID, Website: lead.Website, Abstract: abstract}
	return result
}

package pipeline

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/arcigy/coldlead"
	"golang.org/x/sync/errgroup"
)

// Processor personalizes leads in bulk. Without a Generator every lead gets
// the deterministic template sentence; with one, each lead is sent to the
// generator and falls back to the generic sentence when the call fails.
type Processor struct {
	Generator coldlead.SentenceGenerator

	// Concurrency bounds the number of generator calls in flight.
	// Zero means DefaultConcurrency; one runs sequentially with Delay
	// between calls.
	Concurrency int
	Delay       time.Duration

	// Timeout bounds a single generator call. Zero means no limit.
	Timeout time.Duration
}

// Result holds the outcome of a personalization batch, ordered by lead ID.
type Result struct {
	Personalizations []*coldlead.Personalization
	Rows             []*coldlead.ExportRow

	// Completed counts leads personalized without falling back.
	Completed int
	// Failed counts leads whose generator call failed.
	Failed int
}

type leadResult struct {
	lead *coldlead.Lead
	p    *coldlead.Personalization
	err  error
}

// Process personalizes every lead. A failed lead never aborts the batch;
// an error is returned only when ctx is canceled.
func (p *Processor) Process(ctx context.Context, leads []*coldlead.Lead, progress ProgressFunc) (*Result, error) {
	total := len(leads)
	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	var (
		results []leadResult
		err     error
	)
	if p.concurrency() > 1 && p.Generator != nil {
		results, err = p.processParallel(ctx, leads, progress)
	} else {
		results, err = p.processSequential(ctx, leads, progress)
	}
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b leadResult) int {
		return cmp.Compare(a.lead.ID, b.lead.ID)
	})

	result := &Result{
		Personalizations: make([]*coldlead.Personalization, 0, total),
		Rows:             make([]*coldlead.ExportRow, 0, total),
	}
	for _, r := range results {
		if r.err != nil {
			result.Failed++
		} else {
			result.Completed++
		}
		result.Personalizations = append(result.Personalizations, r.p)
		result.Rows = append(result.Rows, coldlead.NewExportRow(r.lead, r.p))
	}

	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

func (p *Processor) concurrency() int {
	if p.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return p.Concurrency
}

func (p *Processor) processSequential(ctx context.Context, leads []*coldlead.Lead, progress ProgressFunc) ([]leadResult, error) {
	throttle := NewThrottle(p.Delay)
	results := make([]leadResult, 0, len(leads))

	for _, lead := range leads {
		if p.Generator != nil {
			if err := throttle.Wait(ctx); err != nil {
				return nil, err
			}
		}
		r := p.personalize(ctx, lead)
		results = append(results, r)
		report(progress, r, len(results), len(leads))
	}

	return results, nil
}

func (p *Processor) processParallel(ctx context.Context, leads []*coldlead.Lead, progress ProgressFunc) ([]leadResult, error) {
	resultCh := make(chan leadResult, len(leads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())

	go func() {
		for _, lead := range leads {
			g.Go(func() error {
				resultCh <- p.personalize(gctx, lead)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]leadResult, 0, len(leads))
	for r := range resultCh {
		results = append(results, r)
		report(progress, r, len(results), len(leads))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// personalize handles a single lead.
func (p *Processor) personalize(ctx context.Context, lead *coldlead.Lead) leadResult {
	if p.Generator == nil {
		return leadResult{lead: lead, p: coldlead.Personalize(lead)}
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	name := coldlead.ResolveName(lead)
	sentence, err := p.Generator.GenerateSentence(ctx, coldlead.NewSentenceRequest(lead, name))
	if err != nil {
		return leadResult{lead: lead, p: coldlead.FallbackPersonalization(lead, name), err: err}
	}

	return leadResult{
		lead: lead,
		p: &coldlead.Personalization{
			LeadID:   lead.ID,
			Name:     name,
			Sentence: sentence,
			Source:   coldlead.SourceGenerated,
		},
	}
}

func report(progress ProgressFunc, r leadResult, completed, total int) {
	event := ProgressEvent{
		Type:      ProgressCompleted,
		Completed: completed,
		Total:     total,
		LeadID:    r.lead.ID,
	}
	if r.err != nil {
		event.Type = ProgressFailed
		event.Error = r.err
	}
	progress.emit(event)
}

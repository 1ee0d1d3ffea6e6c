package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/arcigy/coldlead"
)

// DefaultRenameDelay spaces name generator calls.
const DefaultRenameDelay = 500 * time.Millisecond

// Renamer asks a NameGenerator for a clean company name for each lead and
// stores the names that changed, carrying the opening sentence over.
// Calls are made one at a time, Delay apart.
type Renamer struct {
	Names coldlead.NameGenerator
	Leads coldlead.LeadService

	Delay time.Duration

	// DryRun computes renames without writing them.
	DryRun bool
}

// Rename describes a single company name change.
type Rename struct {
	LeadID   int
	Website  string
	OldName  string
	NewName  string
	Sentence string
}

// RenameResult holds the outcome of a rename batch.
type RenameResult struct {
	Renames []*Rename
	Updated int
	Failed  int
}

// Rename processes leads in order. Leads whose generated name is empty or
// equal to the current one are left alone. An error is returned only when
// ctx is canceled.
func (r *Renamer) Rename(ctx context.Context, leads []*coldlead.Lead, progress ProgressFunc) (*RenameResult, error) {
	throttle := NewThrottle(r.Delay)
	result := &RenameResult{}
	total := len(leads)

	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	for i, lead := range leads {
		if err := throttle.Wait(ctx); err != nil {
			return nil, err
		}

		rename, err := r.rename(ctx, lead)
		event := ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, LeadID: lead.ID}
		if err != nil {
			result.Failed++
			event.Type = ProgressFailed
			event.Error = err
		}
		if rename != nil {
			result.Renames = append(result.Renames, rename)
			if err == nil && !r.DryRun {
				result.Updated++
			}
		}
		progress.emit(event)
	}

	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

func (r *Renamer) rename(ctx context.Context, lead *coldlead.Lead) (*Rename, error) {
	name, err := r.Names.GenerateName(ctx, lead.Title, lead.Website)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" || name == lead.CompanyName {
		return nil, nil
	}

	rename := &Rename{
		LeadID:   lead.ID,
		Website:  lead.Website,
		OldName:  lead.CompanyName,
		NewName:  name,
		Sentence: coldlead.RenameSentence(lead.FirstSentence, lead.CompanyName, name),
	}
	if r.DryRun {
		return rename, nil
	}

	_, err = r.Leads.UpdateLead(ctx, lead.ID, coldlead.LeadUpdate{
		CompanyName:   &rename.NewName,
		FirstSentence: &rename.Sentence,
	})
	return rename, err
}

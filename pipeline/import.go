package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/arcigy/coldlead"
)

// DefaultImportTerms select structural engineering firms.
var DefaultImportTerms = []string{"stati", "inzinier", "nosn"}

// Importer upserts rows read from a spreadsheet into the lead store. Rows
// are matched to existing leads by exact title.
type Importer struct {
	Leads coldlead.LeadService

	// Terms select rows whose lower-cased title or category contains any of
	// them. Empty means every row is imported.
	Terms []string

	ListName  string
	UserEmail string

	// DryRun matches rows without writing them.
	DryRun bool
}

// ImportResult holds the outcome of an import.
type ImportResult struct {
	Matched int
	Created int
	Updated int
	Failed  int
}

// Match reports whether a row is selected by the importer's terms.
func (im *Importer) Match(lead *coldlead.Lead) bool {
	if len(im.Terms) == 0 {
		return true
	}
	title := strings.ToLower(lead.Title)
	category := strings.ToLower(lead.Category)
	for _, term := range im.Terms {
		term = strings.ToLower(term)
		if strings.Contains(title, term) || strings.Contains(category, term) {
			return true
		}
	}
	return false
}

// Import processes rows in order. A failed row never aborts the import; an
// error is returned only when ctx is canceled.
func (im *Importer) Import(ctx context.Context, rows []*coldlead.Lead, progress ProgressFunc) (*ImportResult, error) {
	result := &ImportResult{}
	total := len(rows)

	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !im.Match(row) {
			continue
		}
		result.Matched++
		if im.DryRun {
			continue
		}

		event := ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, LeadID: row.ID}
		created, err := im.upsert(ctx, row)
		switch {
		case err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = fmt.Errorf("%s: %w", row.Title, err)
		case created:
			result.Created++
		default:
			result.Updated++
		}
		progress.emit(event)
	}

	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

// upsert writes a row, reporting whether a new lead was created.
func (im *Importer) upsert(ctx context.Context, row *coldlead.Lead) (bool, error) {
	lead := *row
	lead.ID = 0
	lead.ListName = im.ListName
	lead.Status = coldlead.StatusLead
	lead.UserEmail = im.UserEmail
	if err := lead.Validate(); err != nil {
		return false, err
	}

	existing, err := im.Leads.FindLeads(ctx, coldlead.LeadFilter{
		Title:  &lead.Title,
		Fields: []string{"id"},
		Limit:  1,
	})
	if err != nil {
		return false, err
	}

	if len(existing) == 0 {
		if err := im.Leads.CreateLead(ctx, &lead); err != nil {
			return false, err
		}
		row.ID = lead.ID
		return true, nil
	}

	row.ID = existing[0].ID
	_, err = im.Leads.UpdateLead(ctx, row.ID, importUpdate(&lead))
	return false, err
}

// importUpdate sets every non-empty field of lead. Empty cells never clear
// what the store already has.
func importUpdate(lead *coldlead.Lead) coldlead.LeadUpdate {
	var upd coldlead.LeadUpdate
	for _, f := range []struct {
		value string
		dst   **string
	}{
		{lead.Title, &upd.Title},
		{lead.CompanyName, &upd.CompanyName},
		{lead.Website, &upd.Website},
		{lead.Phone, &upd.Phone},
		{lead.City, &upd.City},
		{lead.Category, &upd.Category},
		{lead.Abstract, &upd.Abstract},
		{lead.FirstSentence, &upd.FirstSentence},
		{lead.ListName, &upd.ListName},
		{lead.Status, &upd.Status},
		{lead.UserEmail, &upd.UserEmail},
	} {
		if f.value != "" {
			*f.dst = &f.value
		}
	}
	return upd
}

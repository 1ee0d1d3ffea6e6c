package coldlead

import (
	"context"
	"strconv"
)

// ExportColumns are the column names of a tabular export, in order.
// Downstream tooling reads exports by these names.
var ExportColumns = []string{
	"id",
	"original_title",
	"website",
	"final_company_name",
	"ai_first_sentence",
	"email",
	"phone",
	"city",
	"category",
}

// ExportRow is one lead in a tabular export.
type ExportRow struct {
	ID               int    `json:"id"`
	OriginalTitle    string `json:"originalTitle"`
	Website          string `json:"website"`
	FinalCompanyName string `json:"finalCompanyName"`
	AIFirstSentence  string `json:"aiFirstSentence"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	Category         string `json:"category"`
}

// NewExportRow combines a lead with its personalization.
func NewExportRow(lead *Lead, p *Personalization) *ExportRow {
	return &ExportRow{
		ID:               lead.ID,
		OriginalTitle:    lead.Title,
		Website:          lead.Website,
		FinalCompanyName: p.Name,
		AIFirstSentence:  p.Sentence,
		Email:            lead.Email,
		Phone:            lead.Phone,
		City:             lead.City,
		Category:         lead.Category,
	}
}

// Values returns the row's cells in ExportColumns order.
func (r *ExportRow) Values() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.OriginalTitle,
		r.Website,
		r.FinalCompanyName,
		r.AIFirstSentence,
		r.Email,
		r.Phone,
		r.City,
		r.Category,
	}
}

// ExportWriter writes export rows to a tabular destination.
type ExportWriter interface {
	WriteRows(ctx context.Context, rows []*ExportRow) error
}

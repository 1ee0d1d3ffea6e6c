package coldlead

import (
	"context"
	"unicode/utf8"
)

// StatusLead is the status of a lead nobody has contacted yet.
const StatusLead = "lead"

// Lead represents a prospective business contact stored in the lead
// database. JSON names follow the store's field names so that dumps taken
// from the store can be read back unchanged.
type Lead struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	CompanyName     string `json:"company_name_reworked"`
	Website         string `json:"website"`
	Abstract        string `json:"abstract"`
	Category        string `json:"category"`
	City            string `json:"city"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	FirstSentence   string `json:"ai_first_sentence"`
	ListName        string `json:"list_name"`
	Status          string `json:"status"`
	UserEmail       string `json:"user_email"`
	GoogleMapsJobID string `json:"-"`
}

// Validate returns an error if the lead cannot be written to the store.
func (l *Lead) Validate() error {
	if l.Title == "" {
		return Errorf(EINVALID, "lead title required")
	}
	return nil
}

// Description returns the text that best describes what the lead does:
// the abstract when it carries content, otherwise the title, and the
// category when even the title is too short to say anything.
func (l *Lead) Description() string {
	desc := l.Title
	if utf8.RuneCountInString(l.Abstract) > 5 {
		desc = l.Abstract
	}
	if utf8.RuneCountInString(desc) < 3 {
		desc = l.Category
	}
	return desc
}

// LeadReader reads leads from a source.
type LeadReader interface {
	// FindLeads retrieves leads matching the filter.
	FindLeads(ctx context.Context, filter LeadFilter) ([]*Lead, error)
}

// LeadService represents a service for managing leads.
type LeadService interface {
	LeadReader

	// FindLeadByID retrieves a lead by ID.
	// Returns ENOTFOUND if the lead does not exist.
	FindLeadByID(ctx context.Context, id int) (*Lead, error)

	// CreateLead creates a new lead and sets its ID.
	CreateLead(ctx context.Context, lead *Lead) error

	// UpdateLead applies a partial update to a single lead.
	// Returns ENOTFOUND if the lead does not exist.
	UpdateLead(ctx context.Context, id int, upd LeadUpdate) (*Lead, error)

	// UpdateLeads applies the same partial update to every lead in ids.
	UpdateLeads(ctx context.Context, ids []int, upd LeadUpdate) error
}

// LeadFilter represents a filter for FindLeads.
type LeadFilter struct {
	ID              *int    `json:"id"`
	Title           *string `json:"title"`
	GoogleMapsJobID *string `json:"googleMapsJobId"`

	// HasWebsite restricts results to leads with a non-null website.
	HasWebsite bool `json:"hasWebsite"`
	// MissingAbstract restricts results to leads without an abstract.
	MissingAbstract bool `json:"missingAbstract"`

	// Fields limits the returned fields. Empty means all fields.
	Fields []string `json:"fields"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// LeadUpdate represents fields that can be updated on a lead.
type LeadUpdate struct {
	CompanyName   *string `json:"company_name_reworked,omitempty"`
	FirstSentence *string `json:"ai_first_sentence,omitempty"`
	Abstract      *string `json:"abstract,omitempty"`
	ListName      *string `json:"list_name,omitempty"`
	Status        *string `json:"status,omitempty"`
	Title         *string `json:"title,omitempty"`
	Website       *string `json:"website,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	City          *string `json:"city,omitempty"`
	Category      *string `json:"category,omitempty"`
	UserEmail     *string `json:"user_email,omitempty"`
}

// IsZero reports whether the update changes nothing.
func (u LeadUpdate) IsZero() bool {
	return u == LeadUpdate{}
}

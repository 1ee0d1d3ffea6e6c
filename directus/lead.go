package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/arcigy/coldlead"
)

// Ensure LeadService implements coldlead.LeadService at compile time.
var _ coldlead.LeadService = (*LeadService)(nil)

// LeadService implements coldlead.LeadService on the cold_leads collection.
type LeadService struct {
	client *Client
}

// NewLeadService creates a new LeadService.
func NewLeadService(client *Client) *LeadService {
	return &LeadService{client: client}
}

// FindLeads retrieves leads matching the filter, ordered by ID.
func (s *LeadService) FindLeads(ctx context.Context, filter coldlead.LeadFilter) ([]*coldlead.Lead, error) {
	query, err := leadQuery(filter)
	if err != nil {
		return nil, err
	}

	var records []*leadRecord
	if err := s.client.do(ctx, http.MethodGet, itemsPath(coldlead.LeadCollection), query, nil, &records); err != nil {
		return nil, err
	}

	leads := make([]*coldlead.Lead, 0, len(records))
	for _, r := range records {
		leads = append(leads, r.lead())
	}
	return leads, nil
}

// FindLeadByID retrieves a lead by ID. Directus answers 403 rather than 404
// for missing items, so the lookup goes through a filtered query.
func (s *LeadService) FindLeadByID(ctx context.Context, id int) (*coldlead.Lead, error) {
	leads, err := s.FindLeads(ctx, coldlead.LeadFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, coldlead.Errorf(coldlead.ENOTFOUND, "lead %d not found", id)
	}
	return leads[0], nil
}

// CreateLead creates a new lead and sets its ID.
func (s *LeadService) CreateLead(ctx context.Context, lead *coldlead.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	var created leadRecord
	if err := s.client.do(ctx, http.MethodPost, itemsPath(coldlead.LeadCollection), nil, newLeadPayload(lead), &created); err != nil {
		return err
	}
	lead.ID = created.ID
	return nil
}

// UpdateLead patches the fields set in upd. An empty update only reads the lead.
func (s *LeadService) UpdateLead(ctx context.Context, id int, upd coldlead.LeadUpdate) (*coldlead.Lead, error) {
	if upd.IsZero() {
		return s.FindLeadByID(ctx, id)
	}
	if upd.Title != nil && *upd.Title == "" {
		return nil, coldlead.Errorf(coldlead.EINVALID, "lead title required")
	}

	var record leadRecord
	if err := s.client.do(ctx, http.MethodPatch, itemsPath(coldlead.LeadCollection)+"/"+strconv.Itoa(id), nil, upd, &record); err != nil {
		if coldlead.ErrorCode(err) == coldlead.EUNAUTHORIZED {
			// A missing item looks like a permission error; tell them apart.
			if _, findErr := s.FindLeadByID(ctx, id); coldlead.ErrorCode(findErr) == coldlead.ENOTFOUND {
				return nil, findErr
			}
		}
		return nil, err
	}
	return record.lead(), nil
}

// UpdateLeads applies one patch to many leads in a single request.
func (s *LeadService) UpdateLeads(ctx context.Context, ids []int, upd coldlead.LeadUpdate) error {
	if len(ids) == 0 || upd.IsZero() {
		return nil
	}

	body := struct {
		Keys []int               `json:"keys"`
		Data coldlead.LeadUpdate `json:"data"`
	}{Keys: ids, Data: upd}

	return s.client.do(ctx, http.MethodPatch, itemsPath(coldlead.LeadCollection), nil, body, nil)
}

func itemsPath(collection string) string {
	return "/items/" + collection
}

// leadQuery renders a filter as Directus query parameters.
func leadQuery(filter coldlead.LeadFilter) (url.Values, error) {
	rules := map[string]any{}
	if filter.ID != nil {
		rules["id"] = map[string]any{"_eq": *filter.ID}
	}
	if filter.Title != nil {
		rules["title"] = map[string]any{"_eq": *filter.Title}
	}
	if filter.GoogleMapsJobID != nil {
		rules["google_maps_job_id"] = map[string]any{"_eq": *filter.GoogleMapsJobID}
	}
	if filter.HasWebsite {
		rules["website"] = map[string]any{"_nnull": true}
	}
	if filter.MissingAbstract {
		rules["abstract"] = map[string]any{"_null": true}
	}

	q := url.Values{}
	if len(rules) > 0 {
		buf, err := json.Marshal(rules)
		if err != nil {
			return nil, err
		}
		q.Set("filter", string(buf))
	}
	q.Set("sort", "id")
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	} else {
		q.Set("limit", "-1")
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}
	if len(filter.Fields) > 0 {
		q.Set("fields", strings.Join(filter.Fields, ","))
	}
	return q, nil
}

// leadRecord is a lead as Directus returns it. Most fields are nullable.
type leadRecord struct {
	ID              int        `json:"id"`
	Title           *string    `json:"title"`
	CompanyName     *string    `json:"company_name_reworked"`
	Website         *string    `json:"website"`
	Abstract        *string    `json:"abstract"`
	Category        *string    `json:"category"`
	City            *string    `json:"city"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	FirstSentence   *string    `json:"ai_first_sentence"`
	ListName        *string    `json:"list_name"`
	Status          *string    `json:"status"`
	UserEmail       *string    `json:"user_email"`
	GoogleMapsJobID flexString `json:"google_maps_job_id"`
}

func (r *leadRecord) lead() *coldlead.Lead {
	return &coldlead.Lead{
		ID:              r.ID,
		Title:           deref(r.Title),
		CompanyName:     deref(r.CompanyName),
		Website:         deref(r.Website),
		Abstract:        deref(r.Abstract),
		Category:        deref(r.Category),
		City:            deref(r.City),
		Email:           deref(r.Email),
		Phone:           deref(r.Phone),
		FirstSentence:   deref(r.FirstSentence),
		ListName:        deref(r.ListName),
		Status:          deref(r.Status),
		UserEmail:       deref(r.UserEmail),
		GoogleMapsJobID: string(r.GoogleMapsJobID),
	}
}

// leadPayload is the body of a create request. Empty strings are sent as
// null so that store defaults apply.
type leadPayload struct {
	Title         string  `json:"title"`
	CompanyName   *string `json:"company_name_reworked"`
	Website       *string `json:"website"`
	Abstract      *string `json:"abstract"`
	Category      *string `json:"category"`
	City          *string `json:"city"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	FirstSentence *string `json:"ai_first_sentence"`
	ListName      *string `json:"list_name,omitempty"`
	Status        *string `json:"status,omitempty"`
	UserEmail     *string `json:"user_email,omitempty"`
}

func newLeadPayload(l *coldlead.Lead) *leadPayload {
	return &leadPayload{
		Title:         l.Title,
		CompanyName:   nullable(l.CompanyName),
		Website:       nullable(l.Website),
		Abstract:      nullable(l.Abstract),
		Category:      nullable(l.Category),
		City:          nullable(l.City),
		Email:         nullable(l.Email),
		Phone:         nullable(l.Phone),
		FirstSentence: nullable(l.FirstSentence),
		ListName:      nullable(l.ListName),
		Status:        nullable(l.Status),
		UserEmail:     nullable(l.UserEmail),
	}
}

// flexString accepts a JSON string, number or null.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = flexString(n.String())
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

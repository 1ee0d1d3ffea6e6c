package directus

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arcigy/coldlead"
)

// Ensure ListService implements coldlead.ListService at compile time.
var _ coldlead.ListService = (*ListService)(nil)

// ListService implements coldlead.ListService on the cold_leads_lists collection.
type ListService struct {
	client *Client
}

// NewListService creates a new ListService.
func NewListService(client *Client) *ListService {
	return &ListService{client: client}
}

// FindLists retrieves all lists ordered by ID.
func (s *ListService) FindLists(ctx context.Context) ([]*coldlead.List, error) {
	q := url.Values{}
	q.Set("limit", "-1")
	q.Set("sort", "id")
	q.Set("fields", "id,name")

	var lists []*coldlead.List
	if err := s.client.do(ctx, http.MethodGet, itemsPath(coldlead.ListCollection), q, nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateList creates a new list and sets its ID.
func (s *ListService) CreateList(ctx context.Context, list *coldlead.List) error {
	if list.Name == "" {
		return coldlead.Errorf(coldlead.EINVALID, "list name required")
	}

	body := map[string]string{"name": list.Name}
	var created coldlead.List
	if err := s.client.do(ctx, http.MethodPost, itemsPath(coldlead.ListCollection), nil, body, &created); err != nil {
		return err
	}
	list.ID = created.ID
	return nil
}

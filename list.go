package coldlead

import "context"

// DefaultListName is the list a lead belongs to until it is assigned elsewhere.
const DefaultListName = "Všeobecný zoznam"

// List is a named outreach list that leads are grouped into.
type List struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListService represents a service for managing outreach lists.
type ListService interface {
	// FindLists retrieves all lists.
	FindLists(ctx context.Context) ([]*List, error)

	// CreateList creates a new list and sets its ID.
	CreateList(ctx context.Context, list *List) error
}

// FindOrCreateList returns the list called name, creating it when missing.
// The boolean reports whether the list was created.
func FindOrCreateList(ctx context.Context, s ListService, name string) (*List, bool, error) {
	if name == "" {
		return nil, false, Errorf(EINVALID, "list name required")
	}

	lists, err := s.FindLists(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, l := range lists {
		if l.Name == name {
			return l, false, nil
		}
	}

	list := &List{Name: name}
	if err := s.CreateList(ctx, list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

package directus

import (
	"context"
	"net/http"

	"github.com/arcigy/coldlead"
)

// Ensure SchemaService implements coldlead.SchemaService at compile time.
var _ coldlead.SchemaService = (*SchemaService)(nil)

// SchemaService provisions collections and fields. It needs an admin token.
type SchemaService struct {
	client *Client
}

// NewSchemaService creates a new SchemaService.
func NewSchemaService(client *Client) *SchemaService {
	return &SchemaService{client: client}
}

type collectionPayload struct {
	Collection string         `json:"collection"`
	Schema     map[string]any `json:"schema"`
	Meta       collectionMeta `json:"meta"`
}

type collectionMeta struct {
	Icon            string `json:"icon,omitempty"`
	Note            string `json:"note,omitempty"`
	DisplayTemplate string `json:"display_template,omitempty"`
}

// CreateCollection creates a collection. An empty schema makes Directus add
// an integer primary key.
func (s *SchemaService) CreateCollection(ctx context.Context, c coldlead.Collection) error {
	if c.Name == "" {
		return coldlead.Errorf(coldlead.EINVALID, "collection name required")
	}

	body := collectionPayload{
		Collection: c.Name,
		Schema:     map[string]any{},
		Meta: collectionMeta{
			Icon:            c.Icon,
			Note:            c.Note,
			DisplayTemplate: c.DisplayTemplate,
		},
	}
	return s.client.do(ctx, http.MethodPost, "/collections", nil, body, nil)
}

type fieldPayload struct {
	Field  string      `json:"field"`
	Type   string      `json:"type"`
	Meta   fieldMeta   `json:"meta"`
	Schema fieldSchema `json:"schema"`
}

type fieldMeta struct {
	Interface string `json:"interface,omitempty"`
	Display   string `json:"display,omitempty"`
	Width     string `json:"width,omitempty"`
	Readonly  bool   `json:"readonly"`
	Hidden    bool   `json:"hidden"`
}

type fieldSchema struct {
	DefaultValue any  `json:"default_value,omitempty"`
	IsNullable   bool `json:"is_nullable"`
}

// CreateField adds a field to collection.
func (s *SchemaService) CreateField(ctx context.Context, collection string, f coldlead.Field) error {
	if collection == "" {
		return coldlead.Errorf(coldlead.EINVALID, "collection name required")
	}
	if f.Name == "" || f.Type == "" {
		return coldlead.Errorf(coldlead.EINVALID, "field name and type required")
	}

	body := fieldPayload{
		Field: f.Name,
		Type:  f.Type,
		Meta: fieldMeta{
			Interface: f.Interface,
			Display:   f.Display,
			Width:     f.Width,
		},
		Schema: fieldSchema{
			DefaultValue: f.DefaultValue,
			IsNullable:   f.Nullable,
		},
	}
	return s.client.do(ctx, http.MethodPost, "/fields/"+collection, nil, body, nil)
}

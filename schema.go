package coldlead

import "context"

// Collection names used by the lead store.
const (
	LeadCollection = "cold_leads"
	ListCollection = "cold_leads_lists"
)

// Collection describes a store collection to be provisioned.
type Collection struct {
	Name            string
	Icon            string
	Note            string
	DisplayTemplate string
}

// Field describes a store field to be provisioned on a collection.
type Field struct {
	Name         string
	Type         string
	Interface    string
	Display      string
	Width        string
	DefaultValue any
	Nullable     bool
}

// SchemaService provisions collections and fields in the lead store.
type SchemaService interface {
	// CreateCollection creates a collection with its default primary key.
	// Returns ECONFLICT if it already exists.
	CreateCollection(ctx context.Context, c Collection) error

	// CreateField adds a field to an existing collection.
	// Returns ECONFLICT if it already exists.
	CreateField(ctx context.Context, collection string, f Field) error
}

// ListSchema returns the collection and fields backing outreach lists:
// the list collection itself, its name field, and the list_name field
// on leads.
func ListSchema() (Collection, Field, Field) {
	collection := Collection{
		Name:            ListCollection,
		Icon:            "list",
		Note:            "Lists for Cold Outreach",
		DisplayTemplate: "{{name}}",
	}
	nameField := Field{
		Name:      "name",
		Type:      "string",
		Interface: "input",
		Width:     "full",
	}
	listField := Field{
		Name:         "list_name",
		Type:         "string",
		Interface:    "input",
		Display:      "raw",
		Width:        "full",
		DefaultValue: DefaultListName,
		Nullable:     true,
	}
	return collection, nameField, listField
}

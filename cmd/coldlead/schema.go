package main

import (
	"fmt"

	"github.com/arcigy/coldlead"
)

// Run executes the schema init command. Parts that already exist are
// skipped, so it is safe to run repeatedly.
func (c *SchemaInitCmd) Run(deps *Dependencies) error {
	collection, nameField, listField := coldlead.ListSchema()

	steps := []struct {
		label string
		fn    func() error
	}{
		{
			label: "collection " + collection.Name,
			fn:    func() error { return deps.Schema.CreateCollection(deps.Ctx, collection) },
		},
		{
			label: "field " + collection.Name + "." + nameField.Name,
			fn:    func() error { return deps.Schema.CreateField(deps.Ctx, collection.Name, nameField) },
		},
		{
			label: "field " + coldlead.LeadCollection + "." + listField.Name,
			fn:    func() error { return deps.Schema.CreateField(deps.Ctx, coldlead.LeadCollection, listField) },
		},
	}

	for _, step := range steps {
		err := step.fn()
		switch {
		case coldlead.ErrorCode(err) == coldlead.ECONFLICT:
			fmt.Fprintf(deps.Stdout, "Exists:  %s\n", step.label)
		case err != nil:
			return fail(deps, err)
		default:
			fmt.Fprintf(deps.Stdout, "Created: %s\n", step.label)
		}
	}
	return nil
}

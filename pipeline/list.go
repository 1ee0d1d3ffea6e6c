package pipeline

import (
	"context"

	"github.com/arcigy/coldlead"
)

// AssignResult holds the outcome of a list assignment.
type AssignResult struct {
	List *coldlead.List
	// Created reports whether the list had to be created.
	Created bool
	// Assigned counts the leads moved into the list.
	Assigned int
}

// AssignList makes sure the list called name exists and moves every lead
// into it with a single batch update.
func AssignList(ctx context.Context, lists coldlead.ListService, leads coldlead.LeadService, name string) (*AssignResult, error) {
	list, created, err := coldlead.FindOrCreateList(ctx, lists, name)
	if err != nil {
		return nil, err
	}

	all, err := leads.FindLeads(ctx, coldlead.LeadFilter{Fields: []string{"id"}})
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(all))
	for _, l := range all {
		ids = append(ids, l.ID)
	}
	if err := leads.UpdateLeads(ctx, ids, coldlead.LeadUpdate{ListName: &list.Name}); err != nil {
		return nil, err
	}

	return &AssignResult{List: list, Created: created, Assigned: len(ids)}, nil
}

// MoveJobs moves the leads scraped by the given Google Maps jobs into the
// list called name. Leads already in the list are left alone. It returns
// the number of leads moved.
func MoveJobs(ctx context.Context, leads coldlead.LeadService, jobIDs []string, name string) (int, error) {
	if name == "" {
		return 0, coldlead.Errorf(coldlead.EINVALID, "list name required")
	}

	var moved int
	for _, jobID := range jobIDs {
		found, err := leads.FindLeads(ctx, coldlead.LeadFilter{GoogleMapsJobID: &jobID})
		if err != nil {
			return moved, err
		}

		for _, lead := range found {
			if lead.ListName == name {
				continue
			}
			if _, err := leads.UpdateLead(ctx, lead.ID, coldlead.LeadUpdate{ListName: &name}); err != nil {
				return moved, err
			}
			moved++
		}
	}
	return moved, nil
}

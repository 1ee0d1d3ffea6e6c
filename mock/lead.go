package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var _ coldlead.LeadService = (*LeadService)(nil)

// LeadService is a mock implementation of coldlead.LeadService.
type LeadService struct {
	FindLeadsFn    func(ctx context.Context, filter coldlead.LeadFilter) ([]*coldlead.Lead, error)
	FindLeadByIDFn func(ctx context.Context, id int) (*coldlead.Lead, error)
	CreateLeadFn   func(ctx context.Context, lead *coldlead.Lead) error
	UpdateLeadFn   func(ctx context.Context, id int, upd coldlead.LeadUpdate) (*coldlead.Lead, error)
	UpdateLeadsFn  func(ctx context.Context, ids []int, upd coldlead.LeadUpdate) error
}

func (s *LeadService) FindLeads(ctx context.Context, filter coldlead.LeadFilter) ([]*coldlead.Lead, error) {
	return s.FindLeadsFn(ctx, filter)
}

func (s *LeadService) FindLeadByID(ctx context.Context, id int) (*coldlead.Lead, error) {
	return s.FindLeadByIDFn(ctx, id)
}

func (s *LeadService) CreateLead(ctx context.Context, lead *coldlead.Lead) error {
	return s.CreateLeadFn(ctx, lead)
}

func (s *LeadService) UpdateLead(ctx context.Context, id int, upd coldlead.LeadUpdate) (*coldlead.Lead, error) {
	return s.UpdateLeadFn(ctx, id, upd)
}

func (s *LeadService) UpdateLeads(ctx context.Context, ids []int, upd coldlead.LeadUpdate) error {
	return s.UpdateLeadsFn(ctx, ids, upd)
}

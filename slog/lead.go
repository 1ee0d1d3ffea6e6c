package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/arcigy/coldlead"
)

var _ coldlead.LeadService = (*LoggingLeadService)(nil)

// LoggingLeadService wraps a LeadService with logging. Reads are logged at
// debug level, writes at info.
type LoggingLeadService struct {
	next   coldlead.LeadService
	logger *slog.Logger
}

// NewLoggingLeadService creates a new LoggingLeadService.
func NewLoggingLeadService(next coldlead.LeadService, logger *slog.Logger) *LoggingLeadService {
	return &LoggingLeadService{next: next, logger: logger}
}

func (s *LoggingLeadService) FindLeads(ctx context.Context, filter coldlead.LeadFilter) (leads []*coldlead.Lead, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find leads",
			"count", len(leads),
			"limit", filter.Limit,
			"offset", filter.Offset,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLeads(ctx, filter)
}

func (s *LoggingLeadService) FindLeadByID(ctx context.Context, id int) (lead *coldlead.Lead, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find lead",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLeadByID(ctx, id)
}

func (s *LoggingLeadService) CreateLead(ctx context.Context, lead *coldlead.Lead) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create lead",
			"id", lead.ID,
			"title", lead.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateLead(ctx, lead)
}

func (s *LoggingLeadService) UpdateLead(ctx context.Context, id int, upd coldlead.LeadUpdate) (lead *coldlead.Lead, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update lead",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateLead(ctx, id, upd)
}

func (s *LoggingLeadService) UpdateLeads(ctx context.Context, ids []int, upd coldlead.LeadUpdate) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("update leads",
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateLeads(ctx, ids, upd)
}

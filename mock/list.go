package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var _ coldlead.ListService = (*ListService)(nil)

// ListService is a mock implementation of coldlead.ListService.
type ListService struct {
	FindListsFn  func(ctx context.Context) ([]*coldlead.List, error)
	CreateListFn func(ctx context.Context, list *coldlead.List) error
}

func (s *ListService) FindLists(ctx context.Context) ([]*coldlead.List, error) {
	return s.FindListsFn(ctx)
}

func (s *ListService) CreateList(ctx context.Context, list *coldlead.List) error {
	return s.CreateListFn(ctx, list)
}

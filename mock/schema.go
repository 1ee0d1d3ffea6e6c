package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var _ coldlead.SchemaService = (*SchemaService)(nil)

// SchemaService is a mock implementation of coldlead.SchemaService.
type SchemaService struct {
	CreateCollectionFn func(ctx context.Context, c coldlead.Collection) error
	CreateFieldFn      func(ctx context.Context, collection string, f coldlead.Field) error
}

func (s *SchemaService) CreateCollection(ctx context.Context, c coldlead.Collection) error {
	return s.CreateCollectionFn(ctx, c)
}

func (s *SchemaService) CreateField(ctx context.Context, collection string, f coldlead.Field) error {
	return s.CreateFieldFn(ctx, collection, f)
}

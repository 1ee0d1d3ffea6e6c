package mock

import (
	"context"

	"github.com/arcigy/coldlead"
)

var _ coldlead.ExportWriter = (*ExportWriter)(nil)

// ExportWriter is a mock implementation of coldlead.ExportWriter.
type ExportWriter struct {
	WriteRowsFn func(ctx context.Context, rows []*coldlead.ExportRow) error
}

func (w *ExportWriter) WriteRows(ctx context.Context, rows []*coldlead.ExportRow) error {
	return w.WriteRowsFn(ctx, rows)
}

// Package csv reads lead imports from and writes exports to CSV files.
package csv

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/arcigy/coldlead"
)

// bom makes spreadsheet applications detect UTF-8.
const bom = "\ufeff"

// Ensure Writer implements coldlead.ExportWriter at compile time.
var _ coldlead.ExportWriter = (*Writer)(nil)

// Writer writes export rows as UTF-8 CSV with a byte order mark and a
// header row.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRows writes the header and one record per row.
func (w *Writer) WriteRows(ctx context.Context, rows []*coldlead.ExportRow) error {
	if _, err := io.WriteString(w.w, bom); err != nil {
		return err
	}

	cw := csv.NewWriter(w.w)
	if err := cw.Write(coldlead.ExportColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(row.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

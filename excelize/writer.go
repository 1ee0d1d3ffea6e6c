// Package excelize writes lead exports as XLSX workbooks.
package excelize

import (
	"context"
	"io"

	"github.com/arcigy/coldlead"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet holding the export.
const SheetName = "Leads"

// columnWidths are applied in ExportColumns order.
var columnWidths = []float64{8, 40, 32, 28, 80, 30, 18, 18, 24}

// Ensure Writer implements coldlead.ExportWriter at compile time.
var _ coldlead.ExportWriter = (*Writer)(nil)

// Writer writes export rows as a single-sheet workbook.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer writing the workbook to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRows writes a bold header row followed by one row per export row.
func (w *Writer) WriteRows(ctx context.Context, rows []*coldlead.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]any, len(coldlead.ExportColumns))
	for i, name := range coldlead.ExportColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(coldlead.ExportColumns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			row.ID,
			row.OriginalTitle,
			row.Website,
			row.FinalCompanyName,
			row.AIFirstSentence,
			row.Email,
			row.Phone,
			row.City,
			row.Category,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w.w)
}

package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook ingests the first sheet of an Excel journal workbook. The
// first row is the header, same schema as the CSV export. Like ReadCSV, the
// error covers an unreadable workbook only.
func (im *Importer) ReadWorkbook(r io.Reader) (Result, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	if sheet == "" {
		return Result{}, fmt.Errorf("workbook has no sheet")
	}
	records, err := book.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return Result{}, fmt.Errorf("sheet %q is empty, want a header row", sheet)
	}
	return im.FromRows(tabular(records)), nil
}

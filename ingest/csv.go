package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV ingests a CSV journal export. The first record is the header; it
// must contain the journal column names (order does not matter, extra columns
// are ignored). The error covers unreadable input only, per-row problems land
// in the result's rejection list.
func (im *Importer) ReadCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("cannot read csv: %w", err)
	}
	if len(records) == 0 {
		return Result{}, fmt.Errorf("csv is empty, want a header row")
	}
	return im.FromRows(tabular(records)), nil
}

// tabular turns header-plus-records into raw rows. Header names are matched
// case-insensitively; rows shorter than the header leave the missing cells
// empty.
func tabular(records [][]string) []RawRow {
	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}
	rows := make([]RawRow, 0, len(records)-1)
	for i, record := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(record) {
				fields[col] = record[j]
			}
		}
		rows = append(rows, RawRow{Number: i + 2, Fields: fields})
	}
	return rows
}

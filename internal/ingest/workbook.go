package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"ladderview/internal/record"
)

// Workbook reads the first sheet of an Office Open XML workbook.
func Workbook(name string, r io.Reader) ([]record.Record, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", name, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, unsupported(name, "workbook has no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], name, err)
	}
	return rowsToRecords(rows), nil
}

// rowsToRecords maps rows under the header in rows[0]. Columns with a blank
// header are dropped, and rows with no non-blank cell are skipped.
func rowsToRecords(rows [][]string) []record.Record {
	if len(rows) == 0 {
		return []record.Record{}
	}
	header := rows[0]
	records := make([]record.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		var rec record.Record
		for col, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			rec.Set(name, record.Text(cell))
		}
		records = append(records, rec)
	}
	return records
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

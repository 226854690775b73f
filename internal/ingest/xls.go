package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"

	"ladderview/internal/record"
)

var errNoWorkbookStream = errors.New("no workbook stream in compound file")

// LegacyWorkbook reads the first sheet of a BIFF (.xls) workbook.
func LegacyWorkbook(name string, r io.Reader) (records []record.Record, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	// The BIFF parser indexes record bodies without bounds checks.
	defer func() {
		if p := recover(); p != nil {
			records, err = nil, fmt.Errorf("open workbook %s: malformed BIFF data: %v", name, p)
		}
	}()

	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", name, err)
	}
	if book == nil {
		return nil, fmt.Errorf("open workbook %s: %w", name, errNoWorkbookStream)
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, unsupported(name, "workbook has no sheets")
	}
	// MaxRow is the last row index; zero means at most a header row.
	if sheet.MaxRow == 0 {
		return []record.Record{}, nil
	}
	return rowsToRecords(book.ReadAllCells(int(sheet.MaxRow) + 1)), nil
}

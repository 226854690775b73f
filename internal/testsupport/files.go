package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteFile writes content to dir/name, creating dir, and returns the path.
func WriteFile(t testing.TB, dir, name string, content []byte) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WorkbookBytes builds an .xlsx workbook whose first sheet holds rows.
func WorkbookBytes(t testing.TB, rows [][]string) []byte {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()
	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := book.SetSheetRow(sheet, cell, &cells); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	buf, err := book.WriteToBuffer()
	if err != nil {
		t.Fatalf("encode workbook: %v", err)
	}
	return buf.Bytes()
}

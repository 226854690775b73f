package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ladderview/internal/record"
)

// Format identifies a supported input encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatWorkbook
	FormatLegacyWorkbook
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatWorkbook:
		return "workbook"
	case FormatLegacyWorkbook:
		return "legacy workbook"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// DetectFormat picks the decoder from the file extension.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatWorkbook
	case ".xls":
		return FormatLegacyWorkbook
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// Load decodes records from r, dispatching on the extension of name.
func Load(name string, r io.Reader) ([]record.Record, error) {
	switch DetectFormat(name) {
	case FormatWorkbook:
		return Workbook(name, r)
	case FormatLegacyWorkbook:
		return LegacyWorkbook(name, r)
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return JSON(name, data)
	default:
		ext := filepath.Ext(name)
		if ext == "" {
			return nil, unsupported(name, "missing file extension; expected .xlsx, .xlsm, .xls or .json")
		}
		return nil, unsupported(name, "%s files are not supported; expected .xlsx, .xlsm, .xls or .json", ext)
	}
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) ([]record.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return Load(filepath.Base(path), file)
}

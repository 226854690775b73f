package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ladderview/internal/record"
	"ladderview/internal/testsupport"
)

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"runs.xlsx":    FormatWorkbook,
		"RUNS.XLSM":    FormatWorkbook,
		"dump.json":    FormatJSON,
		"legacy.xls":   FormatLegacyWorkbook,
		"notes.csv":    FormatUnknown,
		"no-extension": FormatUnknown,
	}
	for name, want := range tests {
		if got := DetectFormat(name); got != want {
			t.Errorf("DetectFormat(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLoadWorkbook(t *testing.T) {
	data := testsupport.WorkbookBytes(t, [][]string{
		{"vid", "", "ladders_before_filter_adaptive_video", "notes"},
		{"v1", "ignored", `["a","b"]`, "first"},
		{"", "", "", ""},
		{"v2", "x", `["a"]`},
	})

	records, err := Load("export.xlsx", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if diff := cmp.Diff([]string{"vid", "ladders_before_filter_adaptive_video", "notes"}, first.Names()); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if got := first.Value("ladders_before_filter_adaptive_video"); got.Kind() != record.KindText || got.String() != `["a","b"]` {
		t.Fatalf("unexpected stage cell %v %q", got.Kind(), got.String())
	}

	second := records[1]
	notes, ok := second.Get("notes")
	if !ok {
		t.Fatal("missing trailing cell should still produce the field")
	}
	if notes.Kind() != record.KindText || notes.String() != "" {
		t.Fatalf("missing cell should be empty text, got %v %q", notes.Kind(), notes.String())
	}
}

func TestLoadWorkbookHeaderOnly(t *testing.T) {
	data := testsupport.WorkbookBytes(t, [][]string{{"vid", "item_id"}})
	records, err := Load("empty.xlsx", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", records)
	}
}

func TestLoadCorruptWorkbook(t *testing.T) {
	_, err := Load("broken.xlsx", strings.NewReader("not a zip archive"))
	if err == nil {
		t.Fatal("expected error for corrupt workbook")
	}
	if errors.Is(err, ErrUnsupportedInput) {
		t.Fatalf("corrupt workbook should not be reported as unsupported: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	records, err := Load("one.json", strings.NewReader(`{"b": 1, "a": [1, 2]}`))
	if err != nil {
		t.Fatalf("Load object: %v", err)
	}
	if len(records) != 1 || !cmp.Equal(records[0].Names(), []string{"b", "a"}) {
		t.Fatalf("unexpected object result %v", records)
	}

	records, err = Load("many.json", strings.NewReader(testsupport.SampleDatasetJSON))
	if err != nil {
		t.Fatalf("Load array: %v", err)
	}
	if len(records) != testsupport.SampleRecordCount {
		t.Fatalf("expected %d records, got %d", testsupport.SampleRecordCount, len(records))
	}
	if records[2].Value("vid").String() != "c3" {
		t.Fatalf("records out of order: %q", records[2].Value("vid").String())
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		body        string
		unsupported bool
	}{
		{"csv", "runs.csv", "vid\nv1\n", true},
		{"legacy workbook that is not a compound file", "old.xls", "binary", false},
		{"empty legacy workbook", "empty.xls", "", false},
		{"no extension", "upload", "{}", true},
		{"json scalar", "n.json", "42", true},
		{"json array of scalars", "a.json", `[{"a":1}, 2]`, true},
		{"malformed json", "bad.json", `{"a":`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.file, strings.NewReader(tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrUnsupportedInput); got != tt.unsupported {
				t.Fatalf("errors.Is(ErrUnsupportedInput) = %v, want %v (%v)", got, tt.unsupported, err)
			}
			var uie *UnsupportedInputError
			if tt.unsupported && (!errors.As(err, &uie) || uie.Name != tt.file) {
				t.Fatalf("expected UnsupportedInputError naming %q, got %v", tt.file, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := testsupport.WriteFile(t, t.TempDir(), "record.json", []byte(testsupport.SampleRecordJSON))
	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(records) != 1 || records[0].Value("vid").String() != "v0200fg10000abc" {
		t.Fatalf("unexpected records %v", records)
	}
	if _, err := LoadFile(path + ".missing"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

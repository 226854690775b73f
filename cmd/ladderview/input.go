package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"ladderview/internal/dataset"
	"ladderview/internal/ingest"
)

const clipboardSourceName = "clipboard.json"

// Clipboard access is swapped out in tests.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// inputOptions selects where records come from: a file argument or the
// clipboard holding pasted JSON.
type inputOptions struct {
	fromClipboard bool
	position      int
}

func (o inputOptions) load(args []string) (*dataset.Dataset, error) {
	switch {
	case o.fromClipboard && len(args) > 0:
		return nil, errors.New("pass either a file or --from-clipboard, not both")
	case o.fromClipboard:
		text, err := readClipboard()
		if err != nil {
			return nil, fmt.Errorf("read clipboard: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			return nil, errors.New("clipboard is empty")
		}
		records, err := ingest.Load(clipboardSourceName, strings.NewReader(text))
		if err != nil {
			return nil, err
		}
		return dataset.New(clipboardSourceName, records)
	case len(args) == 0:
		return nil, errors.New("a workbook or JSON file is required (or use --from-clipboard)")
	}
	records, err := ingest.LoadFile(args[0])
	if err != nil {
		return nil, err
	}
	return dataset.New(args[0], records)
}

// cursor positions a cursor on the requested 1-based record.
func (o inputOptions) cursor(ds *dataset.Dataset) (*dataset.Cursor, error) {
	cur := ds.Cursor()
	if o.position < 1 {
		return nil, fmt.Errorf("--record must be at least 1, got %d", o.position)
	}
	if err := cur.Seek(o.position - 1); err != nil {
		return nil, fmt.Errorf("--record %d: dataset has %d records: %w", o.position, ds.Len(), err)
	}
	return cur, nil
}

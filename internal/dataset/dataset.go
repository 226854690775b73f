// Package dataset holds an ordered set of ingested records and the cursor used
// to step through them.
package dataset

import (
	"errors"
	"fmt"
	"sync"

	"ladderview/internal/record"
)

var (
	// ErrEmpty reports an input that produced no records.
	ErrEmpty = errors.New("dataset has no records")
	// ErrOutOfRange reports a record index outside the dataset.
	ErrOutOfRange = errors.New("record index out of range")
)

// Dataset is an immutable, ordered list of records from one source.
type Dataset struct {
	source  string
	records []record.Record
}

// New wraps records loaded from source. At least one record is required.
func New(source string, records []record.Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmpty)
	}
	return &Dataset{source: source, records: append([]record.Record(nil), records...)}, nil
}

// Source names where the records came from.
func (d *Dataset) Source() string { return d.source }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// At returns the record at the 0-based index i.
func (d *Dataset) At(i int) (record.Record, error) {
	if i < 0 || i >= len(d.records) {
		return record.Record{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(d.records))
	}
	return d.records[i], nil
}

// AtPosition returns the record at the 1-based display position.
func (d *Dataset) AtPosition(pos int) (record.Record, error) {
	return d.At(pos - 1)
}

// Records returns a copy of the record list.
func (d *Dataset) Records() []record.Record {
	return append([]record.Record(nil), d.records...)
}

// Cursor returns a cursor positioned on the first record.
func (d *Dataset) Cursor() *Cursor {
	return &Cursor{ds: d}
}

// Store holds the dataset currently loaded into the viewer. It is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *Dataset
}

// Replace swaps in ds and returns the previous dataset, if any.
func (s *Store) Replace(ds *Dataset) *Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	s.current = ds
	return prev
}

// Current returns the loaded dataset, or nil.
func (s *Store) Current() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

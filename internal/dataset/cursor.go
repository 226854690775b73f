package dataset

import (
	"fmt"

	"ladderview/internal/record"
)

// Cursor steps through a dataset. Movement clamps at both ends.
type Cursor struct {
	ds  *Dataset
	pos int
}

// Index returns the 0-based position.
func (c *Cursor) Index() int { return c.pos }

// Position returns the 1-based display position.
func (c *Cursor) Position() int { return c.pos + 1 }

// Len returns the number of records under the cursor.
func (c *Cursor) Len() int { return c.ds.Len() }

// Current returns the record under the cursor.
func (c *Cursor) Current() record.Record { return c.ds.records[c.pos] }

// HasNext reports whether Next would move.
func (c *Cursor) HasNext() bool { return c.pos < c.ds.Len()-1 }

// HasPrev reports whether Prev would move.
func (c *Cursor) HasPrev() bool { return c.pos > 0 }

// Next advances one record and reports whether the cursor moved.
func (c *Cursor) Next() bool {
	if !c.HasNext() {
		return false
	}
	c.pos++
	return true
}

// Prev steps back one record and reports whether the cursor moved.
func (c *Cursor) Prev() bool {
	if !c.HasPrev() {
		return false
	}
	c.pos--
	return true
}

// Seek moves to the 0-based index i.
func (c *Cursor) Seek(i int) error {
	if i < 0 || i >= c.ds.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, c.ds.Len())
	}
	c.pos = i
	return nil
}

// Label renders the position as "Record 3 of 10".
func (c *Cursor) Label() string {
	return fmt.Sprintf("Record %d of %d", c.Position(), c.Len())
}

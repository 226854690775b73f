package record

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON reports input that is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid json")
	// ErrNotObject reports JSON that is well-formed but not an object.
	ErrNotObject = errors.New("json value is not an object")
)

// Field is one named value of a record.
type Field struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// Record is an ordered mapping of field name to Value. Names are unique; a
// repeated Set keeps the original position and replaces the value. The zero
// value is an empty record ready for use.
type Record struct {
	fields []Field
	index  map[string]int
}

// New builds a record from fields in order.
func New(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// Parse decodes a JSON object into a record, preserving key order.
func Parse(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return Record{}, ErrNotObject
	}
	return FromObject(res), nil
}

// FromObject converts a parsed JSON object. Non-object input yields an
// empty record.
func FromObject(res gjson.Result) Record {
	var r Record
	if !res.IsObject() {
		return r
	}
	res.ForEach(func(key, value gjson.Result) bool {
		r.Set(key.String(), ValueOf(value))
		return true
	})
	return r
}

// Set assigns a field value.
func (r *Record) Set(name string, v Value) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = v
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Get returns the named value and whether it exists.
func (r Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Missing(), false
	}
	return r.fields[i].Value, true
}

// Value returns the named value or Missing.
func (r Record) Value(name string) Value {
	v, _ := r.Get(name)
	return v
}

// Has reports whether the field exists.
func (r Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns a copy of the fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Names returns the field names in order.
func (r Record) Names() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Without returns a copy of the record minus every field for which drop
// reports true. The receiver is not modified.
func (r Record) Without(drop func(name string) bool) Record {
	var out Record
	for _, f := range r.fields {
		if drop != nil && drop(f.Name) {
			continue
		}
		out.Set(f.Name, f.Value)
	}
	return out
}

// Clone returns an independent copy.
func (r Record) Clone() Record {
	return r.Without(nil)
}

// Equal reports whether both records hold the same fields and values,
// ignoring field order.
func (r Record) Equal(other Record) bool {
	if len(r.fields) != len(other.fields) {
		return false
	}
	for _, f := range r.fields {
		v, ok := other.Get(f.Name)
		if !ok || !v.Equal(f.Value) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	return r.Bytes(), nil
}

// Bytes returns the record as a JSON object in field order.
func (r Record) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(quote(f.Name))
		buf.WriteByte(':')
		buf.WriteString(f.Value.Raw())
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// UnmarshalJSON decodes a JSON object into the record.
func (r *Record) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	*r = parsed
	return nil
}

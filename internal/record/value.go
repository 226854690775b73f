package record

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind identifies the shape a raw field value arrived in.
type Kind int

const (
	// KindMissing marks an absent field.
	KindMissing Kind = iota
	// KindText is a plain string. It may itself contain encoded JSON.
	KindText
	// KindScalar is a JSON number, boolean, or null.
	KindScalar
	// KindSequence is a JSON array.
	KindSequence
	// KindStructured is a JSON object.
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindStructured:
		return "structured"
	default:
		return "missing"
	}
}

// Value is a tagged field value. For text values data holds the string
// itself; for every other kind it holds the compact JSON literal.
type Value struct {
	kind Kind
	data string
}

// Missing returns the value used for absent fields.
func Missing() Value { return Value{} }

// Text wraps a plain string value.
func Text(s string) Value { return Value{kind: KindText, data: s} }

// Number wraps a numeric value.
func Number(f float64) Value {
	return Value{kind: KindScalar, data: strconv.FormatFloat(f, 'f', -1, 64)}
}

// FromJSON resolves a raw JSON literal into a Value. Invalid JSON is kept
// as text so no input is lost.
func FromJSON(raw string) Value {
	if !gjson.Valid(raw) {
		return Text(raw)
	}
	return ValueOf(gjson.Parse(raw))
}

// ValueOf converts an already parsed JSON node.
func ValueOf(res gjson.Result) Value {
	switch res.Type {
	case gjson.String:
		return Text(res.Str)
	case gjson.Number, gjson.True, gjson.False, gjson.Null:
		if !res.Exists() {
			return Missing()
		}
		return Value{kind: KindScalar, data: compact(res.Raw)}
	case gjson.JSON:
		if res.IsArray() {
			return Value{kind: KindSequence, data: compact(res.Raw)}
		}
		return Value{kind: KindStructured, data: compact(res.Raw)}
	default:
		return Missing()
	}
}

// Kind reports the value's shape.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the field was absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsNull reports whether the value is the JSON null literal.
func (v Value) IsNull() bool { return v.kind == KindScalar && v.data == "null" }

// Raw returns the value encoded as JSON. Missing values encode as null.
func (v Value) Raw() string {
	switch v.kind {
	case KindMissing:
		return "null"
	case KindText:
		return quote(v.data)
	default:
		return v.data
	}
}

// Result exposes the parsed JSON form of non-text values. Text values are
// returned as JSON strings; use ParseText to look inside them.
func (v Value) Result() gjson.Result {
	if v.kind == KindMissing {
		return gjson.Result{}
	}
	return gjson.Parse(v.Raw())
}

// ParseText attempts to decode a text value as JSON. ok is false for
// non-text values and for text that is not valid JSON.
func (v Value) ParseText() (gjson.Result, bool) {
	if v.kind != KindText {
		return gjson.Result{}, false
	}
	if !gjson.Valid(v.data) {
		return gjson.Result{}, false
	}
	return gjson.Parse(v.data), true
}

// String returns the display form: the text itself, a scalar literal, or
// compact JSON for sequences and objects. Missing and null values render
// as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindMissing:
		return ""
	case KindScalar:
		if v.data == "null" {
			return ""
		}
		return v.data
	default:
		return v.data
	}
}

// Truthy mirrors how loosely typed sources treat a field as "set": empty
// text, zero, false, null, and missing values are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindMissing:
		return false
	case KindText:
		return v.data != ""
	case KindScalar:
		switch v.data {
		case "null", "false":
			return false
		case "true":
			return true
		}
		f, err := strconv.ParseFloat(v.data, 64)
		return err != nil || f != 0
	default:
		return true
	}
}

// Float coerces the value to a number. Numeric text is accepted; anything
// else yields ok=false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindScalar:
		switch v.data {
		case "true":
			return 1, true
		case "false", "null":
			return 0, false
		}
		f, err := strconv.ParseFloat(v.data, 64)
		return f, err == nil
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.data), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	return v.kind == other.kind && v.data == other.data
}

// MarshalJSON encodes the value as JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.Raw()), nil
}

// UnmarshalJSON decodes any JSON literal into a Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = FromJSON(string(data))
	return nil
}

func compact(raw string) string {
	if !gjson.Valid(raw) {
		return strings.TrimSpace(raw)
	}
	return string(pretty.Ugly([]byte(raw)))
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

package record

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

const emptySequenceText = "[]"

// Normalize turns a raw field value into its canonical ordered item list.
//
// Sequences map element-wise, preserving order and duplicates. Text is
// decoded as JSON when possible: arrays map element-wise, objects become one
// pretty-printed item, scalars become their string form, and undecodable
// text is kept verbatim. Missing, null, empty text and "[]" yield no items.
// Normalize never fails and always returns a non-nil slice.
func Normalize(v Value) []string {
	switch v.kind {
	case KindMissing:
		return []string{}
	case KindText:
		if v.data == "" || v.data == emptySequenceText {
			return []string{}
		}
		parsed, ok := v.ParseText()
		if !ok {
			return []string{v.data}
		}
		return normalizeParsed(parsed)
	case KindScalar:
		if v.IsNull() {
			return []string{}
		}
		return []string{ItemString(gjson.Parse(v.data))}
	case KindSequence:
		return sequenceItems(gjson.Parse(v.data))
	case KindStructured:
		return []string{prettyJSON(v.data)}
	default:
		return []string{v.String()}
	}
}

func normalizeParsed(res gjson.Result) []string {
	switch {
	case res.IsArray():
		return sequenceItems(res)
	case res.IsObject():
		return []string{prettyJSON(res.Raw)}
	default:
		return []string{ItemString(res)}
	}
}

func sequenceItems(res gjson.Result) []string {
	elems := res.Array()
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		out = append(out, ItemString(e))
	}
	return out
}

// ItemString renders one JSON node as a display item. Strings are used
// as-is, numbers use FormatNumber so 1.50 and 1.5 name the same item, and
// nested arrays or objects render as compact JSON.
func ItemString(res gjson.Result) string {
	switch res.Type {
	case gjson.String:
		return res.Str
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return "null"
	case gjson.Number:
		return FormatNumber(res.Num)
	default:
		return compact(res.Raw)
	}
}

// PrettyJSON indents a JSON document with two spaces, keeping key order.
// Input that is not valid JSON is returned unchanged.
func PrettyJSON(raw string) string {
	return prettyJSON(raw)
}

func prettyJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return raw
	}
	return buf.String()
}

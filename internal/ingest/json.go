package ingest

import (
	"fmt"

	"github.com/tidwall/gjson"

	"ladderview/internal/record"
)

// JSON decodes a single object or an array of objects, preserving key order.
func JSON(name string, data []byte) ([]record.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode %s: %w", name, record.ErrInvalidJSON)
	}
	root := gjson.ParseBytes(data)
	switch {
	case root.IsObject():
		return []record.Record{record.FromObject(root)}, nil
	case root.IsArray():
		elems := root.Array()
		records := make([]record.Record, 0, len(elems))
		for i, elem := range elems {
			if !elem.IsObject() {
				return nil, unsupported(name, "array element %d is %s, not an object", i, describe(elem))
			}
			records = append(records, record.FromObject(elem))
		}
		return records, nil
	default:
		return nil, unsupported(name, "top-level JSON %s is neither an object nor an array", describe(root))
	}
}

func describe(res gjson.Result) string {
	switch {
	case res.IsArray():
		return "array"
	case res.IsObject():
		return "object"
	case res.Type == gjson.String:
		return "string"
	case res.Type == gjson.Number:
		return "number"
	case res.Type == gjson.True, res.Type == gjson.False:
		return "boolean"
	default:
		return "null"
	}
}

package view

import (
	"strings"

	"github.com/tidwall/gjson"

	"ladderview/internal/record"
	"ladderview/internal/textutil"
)

// DetailKind says how a detail value should be displayed.
type DetailKind string

const (
	DetailText DetailKind = "text"
	DetailJSON DetailKind = "json"
	DetailBool DetailKind = "bool"
)

// Detail is one additional information entry.
type Detail struct {
	Field string     `json:"field"`
	Label string     `json:"label"`
	Kind  DetailKind `json:"kind"`
	Value string     `json:"value"`
}

// Setting is one configuration field. Compact omits top-level keys whose
// value is null or the empty string.
type Setting struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Full    string `json:"full"`
	Compact string `json:"compact"`
}

var booleanNameHints = []string{"enable", "disable", "flag", "is_", "has_"}

// IsDetailField reports whether name belongs in the additional information
// section.
func IsDetailField(name string, hidden map[string]struct{}) bool {
	if record.IsKeyIdentifier(name) || record.IsSettingsField(name) || record.IsLadderInfoField(name) {
		return false
	}
	if strings.HasPrefix(name, record.LaddersPrefix) {
		return false
	}
	_, skip := hidden[name]
	return !skip
}

// Details lists the additional information fields of rec in record order.
func Details(rec record.Record, hidden map[string]struct{}) []Detail {
	out := []Detail{}
	for _, f := range rec.Fields() {
		if !IsDetailField(f.Name, hidden) {
			continue
		}
		d := Detail{Field: f.Name, Label: textutil.FieldLabel(f.Name)}
		d.Kind, d.Value = detailValue(f.Name, f.Value)
		out = append(out, d)
	}
	return out
}

func detailValue(name string, v record.Value) (DetailKind, string) {
	switch strings.ToLower(v.String()) {
	case "true", "1":
		return DetailBool, "True"
	case "false", "0":
		return DetailBool, "False"
	}
	for _, hint := range booleanNameHints {
		if strings.Contains(name, hint) {
			return DetailText, v.String()
		}
	}
	if v.String() == "" {
		return DetailText, textutil.NotAvailable
	}
	if pretty, ok := prettyStructured(v); ok {
		return DetailJSON, pretty
	}
	return DetailText, v.String()
}

// prettyStructured indents objects and arrays, including text that decodes
// to one.
func prettyStructured(v record.Value) (string, bool) {
	switch v.Kind() {
	case record.KindSequence, record.KindStructured:
		return record.PrettyJSON(v.Raw()), true
	case record.KindText:
		if res, ok := v.ParseText(); ok && (res.IsObject() || res.IsArray()) {
			return record.PrettyJSON(res.Raw), true
		}
	}
	return "", false
}

// Settings lists the configuration fields of rec in record order.
func Settings(rec record.Record) []Setting {
	out := []Setting{}
	for _, f := range rec.Fields() {
		if !record.IsSettingsField(f.Name) {
			continue
		}
		full, compact := settingValue(f.Value)
		out = append(out, Setting{
			Field:   f.Name,
			Label:   textutil.FieldLabel(f.Name),
			Full:    full,
			Compact: compact,
		})
	}
	return out
}

func settingValue(v record.Value) (full, compact string) {
	if !v.Truthy() {
		return textutil.NotAvailable, textutil.NotAvailable
	}
	var obj gjson.Result
	switch v.Kind() {
	case record.KindStructured, record.KindSequence:
		obj = v.Result()
	case record.KindText:
		res, ok := v.ParseText()
		if !ok {
			return v.String(), v.String()
		}
		obj = res
	default:
		return v.String(), v.String()
	}
	full = record.PrettyJSON(obj.Raw)
	if !obj.IsObject() {
		return full, full
	}
	return full, record.PrettyJSON(dropEmpty(obj))
}

// dropEmpty re-encodes obj without members that are null or "".
func dropEmpty(obj gjson.Result) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	obj.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Null || (value.Type == gjson.String && value.Str == "") {
			return true
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(key.Raw)
		b.WriteByte(':')
		b.WriteString(value.Raw)
		return true
	})
	b.WriteByte('}')
	return b.String()
}

package view

import (
	"ladderview/internal/record"
	"ladderview/internal/textutil"
)

// Identifiers lists the key identifiers in fixed order. Unset values show N/A.
func Identifiers(rec record.Record) []Identifier {
	out := make([]Identifier, 0, len(record.KeyIdentifiers))
	for _, k := range record.KeyIdentifiers {
		out = append(out, Identifier{Field: k.Field, Label: k.Label, Value: orNA(rec.Value(k.Field))})
	}
	return out
}

// Cards builds the six summary cards.
func Cards(rec record.Record) []Card {
	device := rec.Value("device_type")
	if !device.Truthy() {
		device = rec.Value("device_platform")
	}
	return []Card{
		{Title: "Region", Value: orUnknown(rec.Value("priority_region"))},
		{Title: "DeviceType", Value: orUnknown(device)},
		{Title: "Client Version", Value: orUnknown(rec.Value("client_version"))},
		{Title: "Duration", Value: textutil.OneDecimal(number(rec.Value("video_duration"))) + "s"},
		{Title: "Access", Value: orUnknown(rec.Value("access_type"))},
		{Title: "Score", Value: textutil.OneDecimal(number(rec.Value("overall_score")))},
	}
}

func orNA(v record.Value) string {
	return textutil.Ternary(v.Truthy(), v.String(), textutil.NotAvailable)
}

func orUnknown(v record.Value) string {
	return textutil.Ternary(v.Truthy(), v.String(), textutil.Unknown)
}

func number(v record.Value) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return textutil.ParseFloatOrZero(v.String())
}

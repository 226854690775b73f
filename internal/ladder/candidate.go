package ladder

import (
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"ladderview/internal/record"
)

const (
	// StatusSelected marks a candidate kept in the final ladder.
	StatusSelected = "1"
	// StatusRejected marks a candidate removed by a filter.
	StatusRejected = "0"
)

// Candidate is one encoding ladder option with its info fields.
type Candidate struct {
	Name          string        `json:"name"`
	Status        string        `json:"status"`
	Reason        string        `json:"reason,omitempty"`
	Bitrate       float64       `json:"bitrate"`
	UniversalVMAF *float64      `json:"universal_vmaf,omitempty"`
	Definition    *float64      `json:"definition,omitempty"`
	Fields        record.Record `json:"fields"`
}

// newCandidate merges the ladder name with its info fields. A "name" key
// inside the info overrides the ladder key.
func newCandidate(name string, info gjson.Result) Candidate {
	fields := record.New(record.Field{Name: "name", Value: record.Text(name)})
	info.ForEach(func(key, value gjson.Result) bool {
		fields.Set(key.String(), record.ValueOf(value))
		return true
	})
	return fromFields(fields)
}

func fromFields(fields record.Record) Candidate {
	c := Candidate{Fields: fields}
	c.Name = coerceString(fields.Value("name"))
	if status, ok := fields.Get("status"); ok {
		c.Status = coerceString(status)
	}
	if reason := fields.Value("reason"); reason.Truthy() {
		c.Reason = coerceString(reason)
	}
	c.Bitrate = coerceNumber(fields.Value("bitrate"))
	c.UniversalVMAF = optionalNumber(fields.Value("universal_vmaf"))
	c.Definition = optionalNumber(fields.Value("definition"))
	return c
}

// IsSelected reports whether the candidate made the final ladder.
func (c Candidate) IsSelected() bool { return c.Status == StatusSelected }

// IsRejected reports whether a filter removed the candidate.
func (c Candidate) IsRejected() bool { return c.Status == StatusRejected }

// coerceString renders a value the way loosely typed producers stringify
// it, so numeric 1 and text "1" compare equal.
func coerceString(v record.Value) string {
	if v.Kind() == record.KindScalar {
		if f, ok := v.Float(); ok && v.String() != "true" {
			return record.FormatNumber(f)
		}
	}
	return v.String()
}

// coerceNumber converts a value to a number, treating missing, empty and
// non-numeric values as 0.
func coerceNumber(v record.Value) float64 {
	f, ok := v.Float()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func optionalNumber(v record.Value) *float64 {
	if !v.Truthy() {
		return nil
	}
	f, ok := v.Float()
	if !ok || math.IsNaN(f) || f == 0 {
		return nil
	}
	return &f
}

func reasonKey(c Candidate) string {
	return strings.ToLower(c.Reason)
}

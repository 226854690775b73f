package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  []string
	}{
		{"missing", Missing(), []string{}},
		{"empty text", Text(""), []string{}},
		{"empty array text", Text("[]"), []string{}},
		{"empty sequence", FromJSON(`[]`), []string{}},
		{"null", FromJSON(`null`), []string{}},
		{"json array text", Text("[1,2,3]"), []string{"1", "2", "3"}},
		{"json array of strings keeps duplicates", Text(`["a","a","b"]`), []string{"a", "a", "b"}},
		{"sequence", FromJSON(`["x", 2, true, null]`), []string{"x", "2", "true", "null"}},
		{"sequence with nested values", FromJSON(`[{"b":1,"a":2},[1, 2]]`), []string{`{"b":1,"a":2}`, "[1,2]"}},
		{"not json", Text("not json"), []string{"not json"}},
		{"json scalar text", Text("42"), []string{"42"}},
		{"json string text", Text(`"hello"`), []string{"hello"}},
		{"json object text", Text(`{"b":1,"a":[1]}`), []string{"{\n  \"b\": 1,\n  \"a\": [\n    1\n  ]\n}"}},
		{"structured", FromJSON(`{"z":"y"}`), []string{"{\n  \"z\": \"y\"\n}"}},
		{"number literals print in shortest form", FromJSON(`[1.50, 1e2, -0, 2.5e-8]`), []string{"1.5", "100", "0", "2.5e-8"}},
		{"number literals in text", Text(`[1.50, 1E2]`), []string{"1.5", "100"}},
		{"scalar literal", FromJSON(`7.10`), []string{"7.1"}},
		{"number", Number(3), []string{"3"}},
		{"zero is kept", Number(0), []string{"0"}},
		{"boolean", FromJSON(`false`), []string{"false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.value)
			if got == nil {
				t.Fatal("Normalize returned nil slice")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeDoesNotAlterInput(t *testing.T) {
	v := Text(`["a","b"]`)
	_ = Normalize(v)
	if !v.Equal(Text(`["a","b"]`)) {
		t.Fatalf("input value changed: %#v", v)
	}
}

func TestPrettyJSONInvalidInputUnchanged(t *testing.T) {
	if got := PrettyJSON("{broken"); got != "{broken" {
		t.Fatalf("PrettyJSON = %q, want input unchanged", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:          "0",
		1.5:        "1.5",
		100:        "100",
		-42.25:     "-42.25",
		1e20:       "100000000000000000000",
		1e21:       "1e+21",
		1.5e25:     "1.5e+25",
		0.0000001:  "1e-7",
		0.00000015: "1.5e-7",
		2.5e-8:     "2.5e-8",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeMatchesEquivalentLiterals(t *testing.T) {
	before := Normalize(FromJSON(`[1.50, 100, "a"]`))
	after := Normalize(Text(`[1.5, 1e2, "a"]`))
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("equivalent literals normalized differently (-before +after):\n%s", diff)
	}
}

package textutil

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotAvailable is shown for missing or empty identifier and detail values.
const NotAvailable = "N/A"

// Unknown is shown for missing summary card text.
const Unknown = "Unknown"

// FieldLabel turns a snake_case field name into a display label: underscores
// become spaces and the first letter of every word is upper-cased. The rest of
// each word is left as written, so "client_VERSION" becomes "Client VERSION".
func FieldLabel(name string) string {
	// cases.Caser is stateful; build one per call.
	title := cases.Title(language.Und, cases.NoLower)
	return title.String(strings.ReplaceAll(name, "_", " "))
}

// OrNA returns s, or NotAvailable when s is blank.
func OrNA(s string) string {
	return Ternary(strings.TrimSpace(s) == "", NotAvailable, s)
}

// OrUnknown returns s, or Unknown when s is blank.
func OrUnknown(s string) string {
	return Ternary(strings.TrimSpace(s) == "", Unknown, s)
}

// OneDecimal formats a number with exactly one fractional digit. Exact ties
// (x.x5) round away from zero, so 15.25 gives "15.3".
func OneDecimal(f float64) string {
	if q := math.Abs(f) * 4; q == math.Trunc(q) && math.Mod(q, 2) == 1 {
		f = math.Copysign(math.Floor(math.Abs(f)*10+0.5)/10, f)
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// ParseFloatOrZero parses the leading decimal number in s, returning 0 when
// none is present. "12.5s" yields 12.5.
func ParseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
scan:
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case (c == '+' || c == '-') && (end == 0 || (seenExp && (s[end-1] == 'e' || s[end-1] == 'E'))):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			break scan
		}
		end++
	}
	for end > 0 {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f
		}
		end--
	}
	return 0
}

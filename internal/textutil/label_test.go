package textutil

import "testing"

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"priority_region", "Priority Region"},
		{"device_id", "Device Id"},
		{"client_VERSION", "Client VERSION"},
		{"h264_bitrate_kbps", "H264 Bitrate Kbps"},
		{"already Spaced", "Already Spaced"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FieldLabel(tt.in); got != tt.want {
			t.Errorf("FieldLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFallbacks(t *testing.T) {
	if OrNA("  ") != NotAvailable || OrNA("x") != "x" {
		t.Error("OrNA fallback mismatch")
	}
	if OrUnknown("") != Unknown || OrUnknown("US") != "US" {
		t.Error("OrUnknown fallback mismatch")
	}
}

func TestParseFloatOrZero(t *testing.T) {
	tests := map[string]float64{
		"12.34":  12.34,
		" 7 ":    7,
		"12.5s":  12.5,
		"-3.25":  -3.25,
		"1e3":    1000,
		"1e":     1,
		"abc":    0,
		"":       0,
		".5":     0.5,
		"3.":     3,
		"4.2.1":  4.2,
		"+8kbps": 8,
	}
	for in, want := range tests {
		if got := ParseFloatOrZero(in); got != want {
			t.Errorf("ParseFloatOrZero(%q) = %v, want %v", in, got, want)
		}
	}
	decimals := map[float64]string{
		12.345: "12.3",
		0:      "0.0",
		15.25:  "15.3",
		-15.25: "-15.3",
		0.75:   "0.8",
		1.45:   "1.4",
		87.66:  "87.7",
	}
	for in, want := range decimals {
		if got := OneDecimal(in); got != want {
			t.Errorf("OneDecimal(%v) = %q, want %q", in, got, want)
		}
	}
}

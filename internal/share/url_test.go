package share

import "testing"

func TestLinkURL(t *testing.T) {
	l := Link{BaseURL: "https://viewer.example.com/"}
	if got := l.URL("abc+-$"); got != "https://viewer.example.com/shared?data=abc+-$" {
		t.Fatalf("URL = %q", got)
	}
	custom := Link{BaseURL: "http://localhost:7487", Route: "view", Param: "t"}
	if got := custom.URL("xyz"); got != "http://localhost:7487/view?t=xyz" {
		t.Fatalf("custom URL = %q", got)
	}
}

func TestTokenFrom(t *testing.T) {
	l := Link{}
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare token", "  N4Ig+x$ ", "N4Ig+x$"},
		{"full url", "https://viewer.example.com/shared?data=N4Ig+x$", "N4Ig+x$"},
		{"other params", "http://h/shared?x=1&data=abc&y=2", "abc"},
		{"escaped", "http://h/shared?data=ab%24c", "ab$c"},
		{"missing param", "http://h/shared?x=1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.TokenFrom(tt.input); got != tt.want {
				t.Fatalf("TokenFrom(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinkRoundTripThroughURL(t *testing.T) {
	rec := sampleRecord(t)
	l := Link{BaseURL: "http://localhost:7487"}
	got, err := Decode(l.TokenFrom(l.URL(mustEncode(t, rec))))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(rec) {
		t.Fatal("record changed after URL round trip")
	}
}

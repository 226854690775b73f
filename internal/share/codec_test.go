package share

import (
	"errors"
	"strings"
	"testing"

	lzstring "github.com/daku10/go-lz-string"
	"github.com/google/go-cmp/cmp"

	"ladderview/internal/record"
)

const uriAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"

func mustEncode(t *testing.T, rec record.Record) string {
	t.Helper()
	token, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return token
}

func mustCompress(t *testing.T, payload string) string {
	t.Helper()
	token, err := lzstring.CompressToEncodedURIComponent(payload)
	if err != nil {
		t.Fatalf("compress %q: %v", payload, err)
	}
	return token
}

func sampleRecord(t *testing.T) record.Record {
	t.Helper()
	rec, err := record.Parse([]byte(`{
		"vid": "7301234",
		"item_id": 99887766,
		"ladders_before_filter_adaptive_video": ["h264_540p", "h264_720p", "h265_1080p"],
		"ladders_after_filter_irregular_bitrate_ladder": "[\"h264_720p\"]",
		"gear_ladder_info": {"h264_720p": {"status": "1", "bitrate": 1800}},
		"notes": "quotes \" and <tags> & ünïcode",
		"empty": null
	}`))
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	return rec
}

func TestRoundTrip(t *testing.T) {
	rec := sampleRecord(t)
	got, err := Decode(mustEncode(t, rec))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rec.Names(), got.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDropsSettingsWithoutMutating(t *testing.T) {
	rec := sampleRecord(t)
	rec.Set("filter_settings", record.Text(`{"threshold": 3}`))

	got, err := Decode(mustEncode(t, rec))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Has("filter_settings") {
		t.Fatal("settings field leaked into share token")
	}
	if !rec.Has("filter_settings") {
		t.Fatal("Encode mutated its input")
	}
	if !got.Equal(record.Shareable(rec)) {
		t.Fatal("decoded record differs from shareable record")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		reason Reason
		target error
	}{
		{"missing", "", MissingPayload, ErrMissingPayload},
		{"not decompressible", "AAAA", DecompressionFailed, ErrDecompressionFailed},
		{"corrupt codes", "ADg", DecompressionFailed, ErrDecompressionFailed},
		{"not json", mustCompress(t, "not json"), InvalidContent, ErrInvalidContent},
		{"json but not an object", mustCompress(t, "[1,2]"), InvalidContent, ErrInvalidContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := ReasonOf(err); got != tt.reason {
				t.Fatalf("reason = %v, want %v", got, tt.reason)
			}
			if !errors.Is(err, tt.target) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tt.target)
			}
		})
	}
}

func TestTokenText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single char", "a"},
		{"latin1", "café crème"},
		{"cjk", "视频编码"},
		{"astral", "ladder \U0001F3AC done"},
		{"long repetitive", strings.Repeat("abcabcabd", 500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record.New(
				record.Field{Name: "vid", Value: record.Text("v1")},
				record.Field{Name: "notes", Value: record.Text(tt.text)},
			)
			token := mustEncode(t, rec)
			for _, r := range token {
				if !strings.ContainsRune(uriAlphabet, r) {
					t.Fatalf("token contains non URL-safe symbol %q", r)
				}
			}
			got, err := Decode(token)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Value("notes").String() != tt.text {
				t.Fatalf("notes = %q, want %q", got.Value("notes").String(), tt.text)
			}
		})
	}
}

func TestDecodeReadsSpacesAsPlus(t *testing.T) {
	rec := record.New(record.Field{Name: "notes", Value: record.Text(strings.Repeat("ÿþ~", 40))})
	token := mustEncode(t, rec)
	if !strings.Contains(token, "+") {
		t.Skip("token has no '+' symbol to exercise")
	}
	got, err := Decode(strings.ReplaceAll(token, "+", " "))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(rec) {
		t.Fatal("record changed after space substitution")
	}
}

func TestEncodeUsesRecordBytes(t *testing.T) {
	rec := sampleRecord(t)
	payload, err := lzstring.DecompressFromEncodedURIComponent(mustEncode(t, rec))
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if payload != string(rec.Bytes()) {
		t.Fatalf("payload = %s\nwant %s", payload, rec.Bytes())
	}
}

func TestReasonMessages(t *testing.T) {
	if MissingPayload.Message() != "No data found in URL" {
		t.Errorf("unexpected missing payload message %q", MissingPayload.Message())
	}
	if DecompressionFailed.Message() != "Failed to decompress data" {
		t.Errorf("unexpected decompression message %q", DecompressionFailed.Message())
	}
	if InvalidContent.Message() != "Invalid data format" {
		t.Errorf("unexpected invalid content message %q", InvalidContent.Message())
	}
}

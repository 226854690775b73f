package share

import (
	"errors"
	"fmt"
	"strings"

	lzstring "github.com/daku10/go-lz-string"

	"ladderview/internal/record"
)

// Reason classifies decode failures.
type Reason int

const (
	// MissingPayload means no token was supplied.
	MissingPayload Reason = iota + 1
	// DecompressionFailed means the token did not decompress to a string.
	DecompressionFailed
	// InvalidContent means the decompressed payload is not a JSON object.
	InvalidContent
)

func (r Reason) String() string {
	switch r {
	case MissingPayload:
		return "missing_payload"
	case DecompressionFailed:
		return "decompression_failed"
	case InvalidContent:
		return "invalid_content"
	default:
		return "unknown"
	}
}

// Message is the user-facing explanation for the reason.
func (r Reason) Message() string {
	switch r {
	case MissingPayload:
		return "No data found in URL"
	case DecompressionFailed:
		return "Failed to decompress data"
	case InvalidContent:
		return "Invalid data format"
	default:
		return "Unable to load shared data"
	}
}

// Sentinels usable with errors.Is against a *DecodeError.
var (
	ErrMissingPayload      = errors.New("share: missing payload")
	ErrDecompressionFailed = errors.New("share: decompression failed")
	ErrInvalidContent      = errors.New("share: invalid content")
)

// DecodeError describes why a token could not be decoded.
type DecodeError struct {
	Reason Reason
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode share token: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode share token: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches the reason sentinels.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrMissingPayload:
		return e.Reason == MissingPayload
	case ErrDecompressionFailed:
		return e.Reason == DecompressionFailed
	case ErrInvalidContent:
		return e.Reason == InvalidContent
	}
	return false
}

// ReasonOf extracts the decode reason from err, or 0 when err is not a
// DecodeError.
func ReasonOf(err error) Reason {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Reason
	}
	return 0
}

// Encode serializes rec minus its configuration fields into a token. rec is
// not modified.
func Encode(rec record.Record) (string, error) {
	payload := strings.ToValidUTF8(string(record.Shareable(rec).Bytes()), "\uFFFD")
	token, err := lzstring.CompressToEncodedURIComponent(payload)
	if err != nil {
		return "", fmt.Errorf("encode share token: %w", err)
	}
	return token, nil
}

// Decode reverses Encode. Query decoding may turn the '+' symbol of the
// alphabet into a space, so spaces are read back as '+'.
func Decode(token string) (record.Record, error) {
	if token == "" {
		return record.Record{}, &DecodeError{Reason: MissingPayload}
	}
	payload, err := decompress(strings.ReplaceAll(token, " ", "+"))
	if err != nil {
		return record.Record{}, &DecodeError{Reason: DecompressionFailed, Err: err}
	}
	if payload == "" {
		return record.Record{}, &DecodeError{Reason: DecompressionFailed}
	}
	rec, err := record.Parse([]byte(payload))
	if err != nil {
		return record.Record{}, &DecodeError{Reason: InvalidContent, Err: err}
	}
	return rec, nil
}

func decompress(token string) (payload string, err error) {
	defer func() {
		if p := recover(); p != nil {
			payload, err = "", fmt.Errorf("corrupt token: %v", p)
		}
	}()
	return lzstring.DecompressFromEncodedURIComponent(token)
}

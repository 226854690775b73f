package ingest

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInput matches every UnsupportedInputError via errors.Is.
var ErrUnsupportedInput = errors.New("unsupported input")

// UnsupportedInputError reports a file whose type or shape cannot be turned
// into records.
type UnsupportedInputError struct {
	Name   string
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("unsupported input: %s", e.Reason)
	}
	return fmt.Sprintf("unsupported input %q: %s", e.Name, e.Reason)
}

// Is reports whether target is ErrUnsupportedInput.
func (e *UnsupportedInputError) Is(target error) bool {
	return target == ErrUnsupportedInput
}

func unsupported(name, format string, args ...any) error {
	return &UnsupportedInputError{Name: name, Reason: fmt.Sprintf(format, args...)}
}

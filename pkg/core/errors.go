package core

import (
	"errors"
	"fmt"
)

// Error kinds. Both are fatal to an export run.
var (
	// ErrInput marks a missing, unreadable or malformed catalog, or a row lacking a required field.
	ErrInput = errors.New("input error")
	// ErrOutput marks a vault path that cannot be created or written.
	ErrOutput = errors.New("output error")
)

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// InputErrorf formats an error of kind ErrInput. Use %w to keep the cause.
func InputErrorf(format string, args ...any) error {
	return &kindError{kind: ErrInput, err: fmt.Errorf(format, args...)}
}

// OutputErrorf formats an error of kind ErrOutput. Use %w to keep the cause.
func OutputErrorf(format string, args ...any) error {
	return &kindError{kind: ErrOutput, err: fmt.Errorf(format, args...)}
}

// Package errs defines the typed errors the DIMACS reader and CLI driver
// use to distinguish malformed input from I/O failure, per the per-file
// error boundary: both are caught and reported, never fatal to the run.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports a malformed DIMACS stream: a bad header, a literal
// before the header, an out-of-range variable, or a non-integer token.
type ParseError struct {
	Line int
	Msg  string
	err  error // wrapped via github.com/pkg/errors for stack context
}

// NewParseError builds a ParseError at the given 1-indexed input line,
// attaching a stack trace to the wrapped cause (reachable through Unwrap).
// Error() returns only the line and message, without the stack.
func NewParseError(line int, msg string) *ParseError {
	return &ParseError{
		Line: line,
		Msg:  msg,
		err:  errors.Errorf("line %d: %s", line, msg),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.err }

// IOError reports a file that could not be opened or read.
type IOError struct {
	Path  string
	Cause error
}

func (e IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("i/o error: %s", e.Cause)
	}
	return fmt.Sprintf("i/o error reading %s: %s", e.Path, e.Cause)
}

func (e IOError) Unwrap() error { return e.Cause }

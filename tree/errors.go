package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per fault kind. A *ParseError unwraps to exactly one
// of these, so callers can test the kind with errors.Is.
var (
	// ErrUnexpectedToken reports a token of the wrong kind for the grammar
	// position, such as a level where a tag is required.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnknownField reports a recognized tag that the enclosing record
	// does not accept.
	ErrUnknownField = errors.New("unknown field")

	// ErrMalformedValue reports a value outside a closed vocabulary.
	ErrMalformedValue = errors.New("malformed value")

	// ErrMissingLevel reports a top-level line that does not start with a
	// level number.
	ErrMissingLevel = errors.New("missing level")
)

// ErrInvalidDocument is returned alongside a partial document when the error
// reporter swallowed one or more faults.
var ErrInvalidDocument = errors.New("parse failed: invalid GEDCOM document")

// ParseError is a fault raised while parsing. The record being built when
// it occurred is discarded.
type ParseError struct {
	Diagnostic
	kind error
}

// NewParseError creates a fatal ParseError of the given kind.
func NewParseError(kind error, code string, line int, token, msg string) *ParseError {
	return &ParseError{
		Diagnostic: Diagnostic{
			Severity: SeverityFatal,
			Code:     code,
			Message:  msg,
			Line:     line,
			Token:    token,
		},
		kind: kind,
	}
}

func (e *ParseError) Error() string {
	prefix := fmt.Sprintf("line %d", e.Line)
	if e.Document != "" {
		prefix = fmt.Sprintf("%s:%d", e.Document, e.Line)
	}
	return fmt.Sprintf("%s: %v: %s", prefix, e.kind, e.Message)
}

// Unwrap returns the fault kind sentinel.
func (e *ParseError) Unwrap() error {
	return e.kind
}

// Kind returns the fault kind sentinel.
func (e *ParseError) Kind() error {
	return e.kind
}

package conventional

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse-failure taxonomy.
// Use errors.Is() to check which failure occurred.
var (
	// ErrEmptyInput indicates the message was empty or all whitespace
	ErrEmptyInput = errors.New("commit message is empty")

	// ErrEmptyHeader indicates the first line of the message was empty
	ErrEmptyHeader = errors.New("commit header is empty")

	// ErrMissingTypeSeparator indicates the header has no ": " separating the type from the description
	ErrMissingTypeSeparator = errors.New(`missing ": " separator between type and description`)

	// ErrMultipleScopesSpecified indicates the header contains more than one scope grouping
	ErrMultipleScopesSpecified = errors.New("multiple scopes specified")

	// ErrInvalidScopeSyntax indicates the header could not be split into a type and scope
	ErrInvalidScopeSyntax = errors.New("invalid scope syntax")
)

// ParseError reports why a commit message failed to parse, along with the
// offending input fragment. It wraps one of the sentinel errors above.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("parse commit message: %v: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("parse commit message: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError
func newParseError(input string, err error) *ParseError {
	return &ParseError{Input: input, Err: err}
}

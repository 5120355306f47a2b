package ssf

import (
	"github.com/pkg/errors"
)

// ParseError reports why a format string failed to parse. Callers that
// need the byte offset or the underlying lexer/parser error can recover
// them with errors.As / errors.Cause; Error() already includes both.
type ParseError struct {
	cause error
}

func (e *ParseError) Error() string {
	return "ssf: parse: " + e.cause.Error()
}

// Unwrap lets errors.Is/errors.As reach the wrapped lexer/parser error.
func (e *ParseError) Unwrap() error {
	return e.cause
}

func newParseError(cause error) *ParseError {
	return &ParseError{cause: errors.WithStack(cause)}
}

// FormatErrorKind classifies why TryFormat failed.
type FormatErrorKind int

const (
	// ErrTypeMismatch means the value did not match any recognized
	// Value kind.
	ErrTypeMismatch FormatErrorKind = iota
	// ErrDateOutOfRange means a date/time section was selected but the
	// serial fell outside the representable range.
	ErrDateOutOfRange
	// ErrInvalidSerial means the input was NaN or infinite.
	ErrInvalidSerial
)

// FormatError reports why TryFormat could not produce a string. Format
// itself never returns this; it renders the empty string instead.
type FormatError struct {
	Kind  FormatErrorKind
	Value any
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case ErrDateOutOfRange:
		return "ssf: format: date serial out of range"
	case ErrInvalidSerial:
		return "ssf: format: non-finite numeric value"
	default:
		return "ssf: format: type mismatch"
	}
}

func newFormatError(kind FormatErrorKind, value any) *FormatError {
	return &FormatError{Kind: kind, Value: value}
}

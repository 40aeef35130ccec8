package uri

import (
	"braces.dev/errtrace"

	"github.com/kyuri-go/uri/internal/grammar"
	"github.com/kyuri-go/uri/internal/storage"
)

// Error is a string-sentinel error identifying one of the recoverable
// failure kinds a parse or mutation can raise. Every Error value is
// comparable with errors.Is against the sentinels below.
type Error string

func (e Error) Error() string { return string(e) }

// Error kinds, mirroring the grammar and storage packages' internal
// sentinels so callers never need to import internal/... themselves.
const (
	ErrInvalidPart             Error = Error(grammar.ErrInvalidPart)
	ErrInvalidCharacter        Error = Error(grammar.ErrInvalidCharacter)
	ErrInvalidPctEncoding      Error = Error(grammar.ErrInvalidPctEncoding)
	ErrInvalidIPv4             Error = Error(grammar.ErrInvalidIPv4)
	ErrInvalidIPv6TooManyGroup Error = Error(grammar.ErrInvalidIPv6TooManyGroup)
	ErrInvalidIPv6MissingGroup Error = Error(grammar.ErrInvalidIPv6MissingGroup)
	ErrInvalidIPv6BadGroup     Error = Error(grammar.ErrInvalidIPv6BadGroup)
	ErrInvalidPort             Error = Error(grammar.ErrInvalidPort)
	ErrInvalidPath             Error = Error(grammar.ErrInvalidPath)
	ErrAllocationFailed        Error = Error(storage.ErrAllocationFailed)
	ErrIncomplete              Error = Error(grammar.ErrIncomplete)
)

// ParseError decorates an Error with the byte offset in the input at which
// parsing failed.
type ParseError struct {
	Kind   Error
	Offset int
}

func (e *ParseError) Error() string { return string(e.Kind) }

func (e *ParseError) Unwrap() error { return e.Kind }

// wrapParseErr converts a grammar-internal *grammar.RuleError (or bare
// grammar.Error) into a public *ParseError, tracing the conversion site.
func wrapParseErr(err error) error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*grammar.RuleError); ok {
		return errtrace.Wrap(&ParseError{Kind: Error(re.Kind), Offset: re.Offset})
	}
	if ge, ok := err.(grammar.Error); ok {
		return errtrace.Wrap(&ParseError{Kind: Error(ge)})
	}
	return errtrace.Wrap(err)
}

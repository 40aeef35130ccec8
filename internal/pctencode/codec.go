// Package pctencode implements the RFC 3986 §2.1 percent-encoding codec:
// encoding arbitrary bytes against a per-component allowed character class,
// and decoding/validating "%HH" escape triples.
package pctencode

import (
	"github.com/kyuri-go/uri/internal/charclass"
)

// Error is a string-sentinel error, mirroring the error-kind pattern used
// throughout this module.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidPctEncoding is raised when a "%" is not followed by two hex digits.
	ErrInvalidPctEncoding Error = "invalid_pct_encoding"
	// ErrInvalidCharacter is raised when a raw byte outside the allowed class
	// (and not a valid "%HH" triple) appears in an already-encoded input.
	ErrInvalidCharacter Error = "invalid_character"
)

const upperhex = "0123456789ABCDEF"

func isHex(c byte) bool { return charclass.HexDigit.Test(c) }

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Encode percent-encodes src against allowed, appending the result to dst
// and returning the extended slice. A byte already forming a valid "%HH"
// triple in src is passed through unescaped, the same way
// gosip/internal/grammar.Escape treats already-encoded input: callers that
// pass raw decoded bytes containing a literal "%" not followed by two hex
// digits get that "%" escaped like any other disallowed byte.
func Encode(dst, src []byte, allowed charclass.Set) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '%' && i+2 < len(src) && isHex(src[i+1]) && isHex(src[i+2]):
			dst = append(dst, src[i], src[i+1], src[i+2])
			i += 2
		case allowed.Test(c):
			dst = append(dst, c)
		default:
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&0xF])
		}
	}
	return dst
}

// DecodedLen returns the length encoded would occupy after Decode,
// or an error if encoded contains a malformed "%" escape.
func DecodedLen(encoded []byte) (int, error) {
	n := 0
	for i := 0; i < len(encoded); i++ {
		if encoded[i] == '%' {
			if i+2 >= len(encoded) || !isHex(encoded[i+1]) || !isHex(encoded[i+2]) {
				return 0, ErrInvalidPctEncoding
			}
			i += 2
		}
		n++
	}
	return n, nil
}

// Decode appends the percent-decoded form of encoded to dst and returns the
// extended slice.
func Decode(dst, encoded []byte) ([]byte, error) {
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != '%' {
			dst = append(dst, c)
			continue
		}
		if i+2 >= len(encoded) || !isHex(encoded[i+1]) || !isHex(encoded[i+2]) {
			return dst, ErrInvalidPctEncoding
		}
		dst = append(dst, unhex(encoded[i+1])<<4|unhex(encoded[i+2]))
		i += 2
	}
	return dst, nil
}

// Validate reports whether encoded already conforms to a production whose
// character class is allowed: every byte is either a member of allowed or
// part of a well-formed "%HH" triple.
func Validate(encoded []byte, allowed charclass.Set) error {
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == '%' {
			if i+2 >= len(encoded) || !isHex(encoded[i+1]) || !isHex(encoded[i+2]) {
				return ErrInvalidPctEncoding
			}
			i += 2
			continue
		}
		if !allowed.Test(c) {
			return ErrInvalidCharacter
		}
	}
	return nil
}

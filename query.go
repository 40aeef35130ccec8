package uri

import (
	"braces.dev/errtrace"

	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/parts"
	"github.com/kyuri-go/uri/internal/pctencode"
)

func qparamKeyClass() charclass.Set   { return charclass.QParamKey }
func qparamValueClass() charclass.Set { return charclass.QParamValue }

// Params returns an ordered, possibly multi-valued view over the URI's
// query parameters — a convenience layered on top of the cursor-based
// View.QueryParams() accessor, grounded on the query-value-helpers supplement.
type Params struct {
	pairs []Param
}

// QueryParams returns the URI's query parameters.
func (u *URI) QueryParams() Params { return Params{pairs: u.View().QueryParams()} }

// Get returns the first decoded value for key, and whether key was found.
func (p Params) Get(key string) (string, bool) {
	for _, pr := range p.pairs {
		k, v, hasVal, err := pr.Decoded()
		if err != nil || k != key {
			continue
		}
		if !hasVal {
			return "", true
		}
		return v, true
	}
	return "", false
}

// Values returns every decoded value for key, in order. A bare key with no
// "=" contributes an empty string.
func (p Params) Values(key string) []string {
	var out []string
	for _, pr := range p.pairs {
		k, v, _, err := pr.Decoded()
		if err != nil || k != key {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Contains reports whether key appears at least once.
func (p Params) Contains(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Count returns the number of occurrences of key.
func (p Params) Count(key string) int { return len(p.Values(key)) }

// Len returns the total number of parameters.
func (p Params) Len() int { return len(p.pairs) }

// InsertParam inserts a key[=value] pair before the parameter currently at
// pos (0 <= pos <= ParamCount). Both key and value must already be
// percent-encoded against the query-parameter character classes.
func (u *URI) InsertParam(pos int, encodedKey, encodedValue []byte, hasValue bool) error {
	pairs := u.View().QueryParams()
	if pos < 0 || pos > len(pairs) {
		return errtrace.Wrap(ErrInvalidPart)
	}
	elems := paramElems(pairs)
	elem := buildParamElem(encodedKey, encodedValue, hasValue)
	out := make([][]byte, 0, len(elems)+1)
	out = append(out, elems[:pos]...)
	out = append(out, elem)
	out = append(out, elems[pos:]...)
	return u.setQuery(out)
}

// ReplaceParam replaces the parameter at pos.
func (u *URI) ReplaceParam(pos int, encodedKey, encodedValue []byte, hasValue bool) error {
	pairs := u.View().QueryParams()
	if pos < 0 || pos >= len(pairs) {
		return errtrace.Wrap(ErrInvalidPart)
	}
	elems := paramElems(pairs)
	elems[pos] = buildParamElem(encodedKey, encodedValue, hasValue)
	return u.setQuery(elems)
}

// EraseParams removes parameters [first, last).
func (u *URI) EraseParams(first, last int) error {
	pairs := u.View().QueryParams()
	if first < 0 || last < first || last > len(pairs) {
		return errtrace.Wrap(ErrInvalidPart)
	}
	elems := paramElems(pairs)
	out := append(append([][]byte{}, elems[:first]...), elems[last:]...)
	return u.setQuery(out)
}

func paramElems(pairs []Param) [][]byte {
	out := make([][]byte, len(pairs))
	for i, p := range pairs {
		out[i] = buildParamElem(p.Key, p.Value, p.HasValue)
	}
	return out
}

func buildParamElem(key, value []byte, hasValue bool) []byte {
	var b []byte
	b = append(b, key...)
	if hasValue {
		b = append(b, '=')
		b = append(b, value...)
	}
	return b
}

func (u *URI) setQuery(elems [][]byte) error {
	var b []byte
	for i, e := range elems {
		if i > 0 {
			b = append(b, '&')
		}
		b = append(b, e...)
	}
	return u.SetEncoded(parts.Query, b)
}

// SetParam is a convenience that percent-encodes key and value against the
// query-parameter classes and appends or replaces the first occurrence of
// key.
func (u *URI) SetParam(key, value string, hasValue bool) error {
	ek := pctencode.Encode(nil, []byte(key), qparamKeyClass())
	ev := pctencode.Encode(nil, []byte(value), qparamValueClass())
	pairs := u.View().QueryParams()
	for i, p := range pairs {
		if k, _, _, err := p.Decoded(); err == nil && k == key {
			return u.ReplaceParam(i, ek, ev, hasValue)
		}
	}
	return u.InsertParam(len(pairs), ek, ev, hasValue)
}

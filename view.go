package uri

import (
	"braces.dev/errtrace"

	"github.com/kyuri-go/uri/internal/grammar"
	"github.com/kyuri-go/uri/internal/parts"
	"github.com/kyuri-go/uri/internal/pctencode"
)

// View is a read-only façade over an already-serialized byte span and its
// component index. A View from Parse holds its own copy of the input bytes;
// a View from URI.View reads the URI's buffer directly.
type View struct {
	data []byte
	idx  *parts.Index
}

// Parse parses s as a URI-reference and returns a View over a copy of s's
// bytes; the View does not borrow s, and later changes to s do not affect it.
func Parse[T ~string | ~[]byte](s T) (View, error) {
	idx, err := grammar.Parse(s)
	if err != nil {
		return View{}, wrapParseErr(err)
	}
	return View{data: []byte(string(s)), idx: idx}, nil
}

// String returns the exact serialized form.
func (v View) String() string { return string(v.data) }

// Len returns the serialized length.
func (v View) Len() int { return len(v.data) }

func (v View) span(c Component) []byte {
	lo, hi := v.idx.Span(c)
	if c == parts.Scheme {
		hi -= v.idx.ComponentDelimLen(c)
	} else {
		lo += v.idx.ComponentDelimLen(c)
	}
	if hi < lo {
		return nil
	}
	return v.data[lo:hi]
}

// Encoded returns component c's still-percent-encoded text, without its
// delimiter.
func (v View) Encoded(c Component) []byte { return v.span(c) }

// Decoded returns component c's percent-decoded text.
func (v View) Decoded(c Component) (string, error) {
	enc := v.span(c)
	dst := make([]byte, 0, v.idx.DecodedLength[c])
	dst, err := pctencode.Decode(dst, enc)
	if err != nil {
		return "", errtrace.Wrap(Error(pctencode.ErrInvalidPctEncoding))
	}
	return string(dst), nil
}

// HasScheme reports whether a scheme is present.
func (v View) HasScheme() bool { return v.idx.HasScheme() }

// HasAuthority reports whether an authority ("//...") is present.
func (v View) HasAuthority() bool { return v.idx.HasAuthority() }

// HasUser reports whether a username is present.
func (v View) HasUser() bool { return v.idx.HasUser() }

// HasPassword reports whether a password is present.
func (v View) HasPassword() bool { return v.idx.HasPassword() }

// HasPort reports whether a port is present.
func (v View) HasPort() bool { return v.idx.HasPort() }

// HasQuery reports whether a query is present.
func (v View) HasQuery() bool { return v.idx.HasQuery() }

// HasFragment reports whether a fragment is present.
func (v View) HasFragment() bool { return v.idx.HasFragment() }

// SchemeKind returns the fast-path classification of the scheme.
func (v View) SchemeKind() SchemeKind { return v.idx.SchemeKind }

// HostKind classifies the syntactic form of the host component.
func (v View) HostKind() HostKind { return v.idx.HostKind }

// IPv4 returns the decoded IPv4 address bytes, valid iff HostKind() == HostIPv4.
func (v View) IPv4() [4]byte { return v.idx.IPv4 }

// IPv6 returns the decoded IPv6 address bytes, valid iff HostKind() == HostIPv6.
func (v View) IPv6() [16]byte { return v.idx.IPv6 }

// IPvFuture returns the bracketed host's version tag and address text (the
// span between "[" and "]", e.g. "v1.abc" for a host written "[v1.abc]"),
// and true, iff HostKind() == HostIPvFuture. It is derived from the Host
// span rather than cached on Index, the same re-derive-don't-cache
// discipline PathSegments/QueryParams use.
func (v View) IPvFuture() ([]byte, bool) {
	if v.idx.HostKind != parts.HostIPvFuture {
		return nil, false
	}
	enc := v.span(parts.Host)
	if len(enc) < 2 || enc[0] != '[' || enc[len(enc)-1] != ']' {
		return nil, false
	}
	return enc[1 : len(enc)-1], true
}

// PathForm reports which RFC 3986 path sub-production the path uses.
func (v View) PathForm() PathForm { return v.idx.PathForm }

// Port returns the parsed numeric port, or 0 if absent or unparseable to
// 16 bits.
func (v View) Port() uint16 { return v.idx.PortNumber }

// SegmentCount returns the number of path segments.
func (v View) SegmentCount() int { return v.idx.SegmentCount }

// ParamCount returns the number of "&"-delimited query parameters.
func (v View) ParamCount() int { return v.idx.ParamCount }

// PathSegments returns a restartable, forward-iterable sequence of the raw
// (still-encoded) path segments, re-scanning the path region rather than
// caching subspans (spec §9: segment re-parsing is O(segment length)).
func (v View) PathSegments() []Segment {
	raw := v.span(parts.Path)
	base, _ := v.idx.Span(parts.Path)
	base += v.idx.ComponentDelimLen(parts.Path)
	if len(raw) == 0 {
		return nil
	}
	var segs []Segment
	i := 0
	if len(raw) > 0 && raw[0] == '/' {
		i = 1
	}
	start := i
	for j := i; j <= len(raw); j++ {
		if j == len(raw) || raw[j] == '/' {
			segs = append(segs, Segment{Encoded: raw[start:j], Offset: base + start})
			start = j + 1
		}
	}
	return segs
}

// Segment is one path segment, still percent-encoded.
type Segment struct {
	Encoded []byte
	Offset  int
}

// Decoded returns the segment's percent-decoded text.
func (s Segment) Decoded() (string, error) {
	dst, err := pctencode.Decode(nil, s.Encoded)
	if err != nil {
		return "", errtrace.Wrap(Error(pctencode.ErrInvalidPctEncoding))
	}
	return string(dst), nil
}

// Param is one query parameter: a key with an optional value, distinguishing
// present-but-empty ("a=") from absent ("a") per spec scenario 6.
type Param struct {
	Key       []byte
	Value     []byte
	HasValue  bool
	KeyOffset int
	ValOffset int
}

// QueryParams returns a restartable sequence of the raw (still-encoded)
// query parameters, parsed with the key=value&... micro-grammar.
func (v View) QueryParams() []Param {
	raw := v.span(parts.Query)
	base, _ := v.idx.Span(parts.Query)
	base += v.idx.ComponentDelimLen(parts.Query)
	if len(raw) == 0 {
		return nil
	}
	var params []Param
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == '&' {
			elem := raw[start:i]
			params = append(params, parseParam(elem, base+start))
			start = i + 1
		}
	}
	return params
}

func parseParam(elem []byte, offset int) Param {
	for i := 0; i < len(elem); i++ {
		if elem[i] == '=' {
			return Param{
				Key: elem[:i], KeyOffset: offset,
				Value: elem[i+1:], ValOffset: offset + i + 1,
				HasValue: true,
			}
		}
	}
	return Param{Key: elem, KeyOffset: offset}
}

// Decoded returns the param's percent-decoded key and, if present, value.
func (p Param) Decoded() (key string, value string, hasValue bool, err error) {
	kb, err := pctencode.Decode(nil, p.Key)
	if err != nil {
		return "", "", false, errtrace.Wrap(Error(pctencode.ErrInvalidPctEncoding))
	}
	if !p.HasValue {
		return string(kb), "", false, nil
	}
	vb, err := pctencode.Decode(nil, p.Value)
	if err != nil {
		return "", "", false, errtrace.Wrap(Error(pctencode.ErrInvalidPctEncoding))
	}
	return string(kb), string(vb), true, nil
}

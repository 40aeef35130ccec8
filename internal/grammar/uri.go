// Package grammar implements the hand-written recursive-descent RFC 3986
// URI-reference grammar: scheme, authority (userinfo/host/port), the five
// path forms, query and fragment, plus the percent-encoding-aware character
// classes each production is validated against.
package grammar

import (
	"github.com/kyuri-go/uri/internal/parts"
	"github.com/kyuri-go/uri/internal/pctencode"
)

// Parse parses s as a "URI-reference" (either an absolute URI with a scheme
// or a relative reference) and returns the populated component index. It
// accepts either a string or a byte slice and parses a private copy of it;
// the returned Index holds only offsets, which apply equally to s.
func Parse[T ~string | ~[]byte](s T) (*parts.Index, error) {
	buf := []byte(string(s))
	c := &cursor{s: buf, pos: 0}
	idx := &parts.Index{}

	schemeText, hasScheme := parseScheme(c)
	if hasScheme {
		idx.SchemeKind = classifyScheme(schemeText)
	}
	idx.Offset[parts.User] = c.pos

	var auth authorityResult
	hasAuthority := false
	res, err := parseAuthority(c)
	switch {
	case err == nil:
		auth = res
		hasAuthority = true
	case IsKind(err, ErrNoMatch):
		// no leading "//": authority is simply absent, not malformed.
	default:
		return nil, err
	}

	if hasAuthority {
		idx.HasAuthorityFlag = true
		idx.HasUserFlag = auth.hasUser
		idx.HasPasswordFlag = auth.hasPass
		idx.Offset[parts.Pass] = auth.userEnd
		if auth.hasPass {
			idx.Offset[parts.Host] = auth.passEnd
		} else {
			idx.Offset[parts.Host] = auth.userEnd
		}
		idx.Offset[parts.Port] = auth.hostEnd
		idx.HostKind = auth.host.kind
		idx.IPv4 = auth.host.ipv4
		idx.IPv6 = auth.host.ipv6
		idx.HasPortFlag = auth.hasPort
		idx.PortNumber = auth.port
		idx.Offset[parts.Path] = auth.portEnd
	} else {
		idx.Offset[parts.Pass] = idx.Offset[parts.User]
		idx.Offset[parts.Host] = idx.Offset[parts.User]
		idx.Offset[parts.Port] = idx.Offset[parts.User]
		idx.Offset[parts.Path] = idx.Offset[parts.User]
	}

	form, segCount, err := parsePath(c, hasScheme, hasAuthority)
	if err != nil {
		return nil, err
	}
	idx.PathForm = form
	idx.SegmentCount = segCount
	idx.Offset[parts.Query] = c.pos

	if !c.eof() && c.s[c.pos] == '?' {
		c.pos++
		count, err := parseQuery(c)
		if err != nil {
			return nil, err
		}
		idx.HasQueryFlag = true
		idx.ParamCount = count
	}
	idx.Offset[parts.Fragment] = c.pos

	if !c.eof() && c.s[c.pos] == '#' {
		c.pos++
		if err := parseFragment(c); err != nil {
			return nil, err
		}
		idx.HasFragmentFlag = true
	}
	idx.Offset[parts.NumComponents] = c.pos

	if !c.eof() {
		return nil, newRuleErr(ErrIncomplete, "URI-reference", c.pos)
	}

	for comp := parts.Scheme; comp < parts.NumComponents; comp++ {
		lo, hi := idx.Span(comp)
		if comp == parts.Scheme {
			hi -= idx.ComponentDelimLen(comp)
		} else {
			lo += idx.ComponentDelimLen(comp)
		}
		if hi < lo {
			hi = lo
		}
		n, err := pctencode.DecodedLen(buf[lo:hi])
		if err != nil {
			return nil, newRuleErr(ErrInvalidPctEncoding, comp.String(), lo)
		}
		idx.DecodedLength[comp] = n
	}
	return idx, nil
}

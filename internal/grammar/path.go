package grammar

import (
	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/parts"
)

// segmentNZNC is the allowed class for the first segment of a path-noscheme
// (segment-nz-nc: pchar minus ":"), so that a relative reference's first
// path segment is never mistaken for a scheme on re-serialization.
var segmentNZNC = charclass.PathSegment.Without(":")

// parsePath consumes the remainder of the cursor up to the first '?' or '#'
// (or EOF) as a path component, validating its characters against form and
// counting its segments. hasAuthority/hasScheme select which of the five
// RFC 3986 path productions applies; callers must have already verified the
// leading "/" (or its absence) matches the chosen form before calling.
func parsePath(c *cursor, hasScheme, hasAuthority bool) (form parts.PathForm, segmentCount int, err error) {
	start := c.pos
	end := start
	for end < len(c.s) && c.s[end] != '?' && c.s[end] != '#' {
		end++
	}
	raw := c.s[start:end]

	switch {
	case hasAuthority:
		form = parts.PathAbempty
	case len(raw) == 0:
		form = parts.PathEmptyForm
	case raw[0] == '/':
		form = parts.PathAbsolute
	case hasScheme:
		form = parts.PathRootless
	default:
		form = parts.PathNoScheme
	}

	segs := splitPathSegments(raw)
	for i, seg := range segs {
		class := charclass.PathSegment
		if form == parts.PathNoScheme && i == 0 {
			class = segmentNZNC
		}
		if err := validateClass(seg.text, class, start+seg.offset); err != nil {
			c.pos = start
			return 0, 0, err
		}
	}

	switch form {
	case parts.PathAbsolute, parts.PathRootless:
		if len(segs) == 0 || len(segs[0].text) == 0 {
			if len(raw) > 1 || form == parts.PathRootless {
				c.pos = start
				return 0, 0, newRuleErr(ErrInvalidPath, "path", start)
			}
		}
	case parts.PathNoScheme:
		if len(segs) == 0 || len(segs[0].text) == 0 {
			c.pos = start
			return 0, 0, newRuleErr(ErrInvalidPath, "path", start)
		}
	}

	c.pos = end
	return form, len(segs), nil
}

type pathSegment struct {
	text   []byte
	offset int
}

// splitPathSegments splits a raw path span into its "/"-delimited segments,
// matching the spec's "segments are delimited by the raw '/' byte" rule
// (segments never carry a leading or trailing '/').
func splitPathSegments(raw []byte) []pathSegment {
	if len(raw) == 0 {
		return nil
	}
	var segs []pathSegment
	i := 0
	if raw[0] == '/' {
		i = 1
	}
	segStart := i
	for j := i; j <= len(raw); j++ {
		if j == len(raw) || raw[j] == '/' {
			segs = append(segs, pathSegment{text: raw[segStart:j], offset: segStart})
			segStart = j + 1
		}
	}
	return segs
}

// validateClass validates that s consists only of class members or valid
// pct-encoded triples, reporting errors at absolute offsets.
func validateClass(s []byte, class charclass.Set, start int) error {
	c := &cursor{s: s, pos: 0}
	for !c.eof() {
		b, _ := c.peek()
		if b == '%' {
			if err := validatePctTriple(c, start); err != nil {
				return err
			}
			continue
		}
		if !class.Test(b) {
			return newRuleErr(ErrInvalidCharacter, "path", start+c.pos)
		}
		c.pos++
	}
	return nil
}

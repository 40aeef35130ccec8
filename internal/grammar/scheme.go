package grammar

import (
	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/parts"
)

// parseScheme parses "scheme ':'" at the start of the cursor, returning the
// scheme text (excluding the colon). When no scheme is present it returns
// ok == false with the cursor where it started, so callers that treat the
// scheme as optional just check ok.
func parseScheme(c *cursor) (text []byte, ok bool) {
	start := c.pos
	if c.eof() || !charclass.SchemeStart.Test(c.s[c.pos]) {
		return nil, false
	}
	token(c, charclass.SchemeContinue)
	if c.eof() || c.s[c.pos] != ':' {
		c.pos = start
		return nil, false
	}
	text = c.s[start:c.pos]
	c.pos++ // consume ':'
	return text, true
}

// classifyScheme maps a handful of well-known scheme names to their fast
// -path kind; anything else is SchemeOther. Matching is case-insensitive
// per RFC 3986 §3.1.
func classifyScheme(s []byte) parts.SchemeKind {
	switch {
	case equalFold(s, "http"):
		return parts.SchemeHTTP
	case equalFold(s, "https"):
		return parts.SchemeHTTPS
	case equalFold(s, "ws"):
		return parts.SchemeWS
	case equalFold(s, "wss"):
		return parts.SchemeWSS
	case equalFold(s, "ftp"):
		return parts.SchemeFTP
	case equalFold(s, "file"):
		return parts.SchemeFile
	default:
		return parts.SchemeOther
	}
}

func equalFold(s []byte, want string) bool {
	if len(s) != len(want) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := s[i], want[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

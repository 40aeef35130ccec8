package grammar

import "github.com/kyuri-go/uri/internal/charclass"

// validateUserInfoChars checks that s (already isolated by authority
// parsing) consists only of unreserved / sub-delims / ":" / pct-encoded,
// per the "userinfo" production.
func validateUserInfoChars(s []byte, start int) error {
	c := &cursor{s: s, pos: 0}
	for !c.eof() {
		b, _ := c.peek()
		if b == '%' {
			if err := validatePctTriple(c, start); err != nil {
				return err
			}
			continue
		}
		if !charclass.UserInfo.Test(b) {
			return newRuleErr(ErrInvalidCharacter, "userinfo", start+c.pos)
		}
		c.pos++
	}
	return nil
}

// validatePctTriple consumes one "%" HEXDIG HEXDIG at c.pos, reporting an
// error at the absolute offset base+c.pos on malformed input.
func validatePctTriple(c *cursor, base int) error {
	if !literal(c, "%") {
		return newRuleErr(ErrInvalidPctEncoding, "pct-encoded", base+c.pos)
	}
	if c.pos+2 > len(c.s) || !charclass.HexDigit.Test(c.s[c.pos]) || !charclass.HexDigit.Test(c.s[c.pos+1]) {
		return newRuleErr(ErrInvalidPctEncoding, "pct-encoded", base+c.pos-1)
	}
	c.pos += 2
	return nil
}

// splitUserInfo splits a raw (not-yet-validated) userinfo span into user and
// pass substrings, dividing at the first unescaped ':'.
func splitUserInfo(s []byte) (user, pass []byte, hasPass bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:], true
		}
		if s[i] == '%' {
			i += 2
		}
	}
	return s, nil, false
}

package grammar

import "github.com/kyuri-go/uri/internal/charclass"

var ipvFutureRest = charclass.UserInfo

// parseIPvFuture parses the "IPvFuture" production: "v" 1*HEXDIG "." 1*( ... ).
// The bracket wrapper is handled by the caller (ip_literal.go); the returned
// span excludes the brackets.
func parseIPvFuture(c *cursor) ([]byte, error) {
	start := c.pos
	if !literal(c, "v") && !literal(c, "V") {
		return nil, newRuleErr(ErrNoMatch, "IPvFuture", start)
	}
	ver := token(c, charclass.HexDigit)
	if len(ver) == 0 {
		c.pos = start
		return nil, newRuleErr(ErrInvalidCharacter, "IPvFuture", start)
	}
	if !literal(c, ".") {
		c.pos = start
		return nil, newRuleErr(ErrInvalidCharacter, "IPvFuture", start)
	}
	rest := token(c, ipvFutureRest)
	if len(rest) == 0 {
		c.pos = start
		return nil, newRuleErr(ErrInvalidCharacter, "IPvFuture", start)
	}
	return c.s[start:c.pos], nil
}

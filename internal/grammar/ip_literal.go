package grammar

import "github.com/kyuri-go/uri/internal/parts"

// ipLiteralResult carries whichever of the two bracket-wrapped host forms
// matched.
type ipLiteralResult struct {
	kind parts.HostKind
	ipv6 [16]byte
	text []byte // IPvFuture only; kept as literal text (version tag included)
}

// parseIPLiteral parses the "IP-literal" production: "[" ( IPv6address /
// IPvFuture ) "]". The returned span includes the brackets.
func parseIPLiteral(c *cursor) (ipLiteralResult, error) {
	start := c.pos
	var res ipLiteralResult
	if !literal(c, "[") {
		return res, newRuleErr(ErrNoMatch, "IP-literal", start)
	}

	var ipv6Err error
	if err := attempt(c, func(c *cursor) error {
		var addr [16]byte
		if err := parseIPv6(c, &addr); err != nil {
			return err
		}
		res.kind = parts.HostIPv6
		res.ipv6 = addr
		return nil
	}); err == nil {
		if !literal(c, "]") {
			c.pos = start
			return ipLiteralResult{}, newRuleErr(ErrInvalidCharacter, "IP-literal", start)
		}
		return res, nil
	} else {
		ipv6Err = err
	}

	future, err := parseIPvFuture(c)
	if err != nil {
		c.pos = start
		// Both alternatives failed. When the IPv6 branch got far enough to
		// raise a specific kind (bad group count, bad hex group), that is
		// more useful than the generic fallback, which is reserved for
		// content that never looked like either production.
		if !IsKind(ipv6Err, ErrNoMatch) {
			return ipLiteralResult{}, ipv6Err
		}
		return ipLiteralResult{}, newRuleErr(ErrInvalidCharacter, "IP-literal", start)
	}
	if !literal(c, "]") {
		c.pos = start
		return ipLiteralResult{}, newRuleErr(ErrInvalidCharacter, "IP-literal", start)
	}
	res.kind = parts.HostIPvFuture
	res.text = future
	return res, nil
}

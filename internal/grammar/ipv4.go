package grammar

import "github.com/kyuri-go/uri/internal/charclass"

// parseDecOctet parses one "dec-octet" (0-255, leading zeros accepted per
// spec §9 Open Question (b)) and returns its numeric value.
func parseDecOctet(c *cursor) (byte, error) {
	start := c.pos
	digits := token(c, charclass.Digit)
	if len(digits) == 0 || len(digits) > 3 {
		c.pos = start
		return 0, newRuleErr(ErrNoMatch, "dec-octet", start)
	}
	v := 0
	for _, d := range digits {
		v = v*10 + int(d-'0')
	}
	if v > 255 {
		c.pos = start
		return 0, newRuleErr(ErrInvalidIPv4, "dec-octet", start)
	}
	return byte(v), nil
}

// parseIPv4 parses the "IPv4address" production (four dec-octets separated
// by '.') into out, leaving the cursor past the match on success and
// unmoved on failure.
func parseIPv4(c *cursor, out *[4]byte) error {
	start := c.pos
	for i := 0; i < 4; i++ {
		if i > 0 {
			if !literal(c, ".") {
				c.pos = start
				return newRuleErr(ErrInvalidIPv4, "IPv4address", start)
			}
		}
		v, err := parseDecOctet(c)
		if err != nil {
			c.pos = start
			return newRuleErr(ErrInvalidIPv4, "IPv4address", start)
		}
		out[i] = v
	}
	return nil
}

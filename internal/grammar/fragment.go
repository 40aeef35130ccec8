package grammar

import "github.com/kyuri-go/uri/internal/charclass"

// parseFragment consumes the remainder of the cursor as a fragment
// component (the text following the leading '#', which the caller has
// already consumed), validating characters against the generic fragment
// class.
func parseFragment(c *cursor) error {
	start := c.pos
	cur := &cursor{s: c.s[start:], pos: 0}
	for !cur.eof() {
		b, _ := cur.peek()
		if b == '%' {
			if err := validatePctTriple(cur, start); err != nil {
				c.pos = start
				return err
			}
			continue
		}
		if !charclass.Fragment.Test(b) {
			c.pos = start
			return newRuleErr(ErrInvalidCharacter, "fragment", start+cur.pos)
		}
		cur.pos++
	}
	c.pos = len(c.s)
	return nil
}

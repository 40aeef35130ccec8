package grammar

import "github.com/kyuri-go/uri/internal/charclass"

// cursor is the scratch state threaded through every rule function: the
// full input span and the current read offset into it. Every rule function
// takes a *cursor (its other parameters and results vary by production) and
// either advances c.pos past what it consumed or leaves c.pos untouched and
// reports failure.
type cursor struct {
	s   []byte
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.s) }

func (c *cursor) peek() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	return c.s[c.pos], true
}

// token is the BNF combinator primitive that consumes the maximal prefix of
// the remaining input whose bytes are all members of class, advancing the
// cursor and returning the consumed span.
func token(c *cursor, class charclass.Set) []byte {
	start := c.pos
	for !c.eof() && class.Test(c.s[c.pos]) {
		c.pos++
	}
	return c.s[start:c.pos]
}

// literal consumes exactly s if it is the next len(s) bytes of input.
func literal(c *cursor, s string) bool {
	if c.pos+len(s) > len(c.s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if c.s[c.pos+i] != s[i] {
			return false
		}
	}
	c.pos += len(s)
	return true
}

// attempt is the BNF combinator primitive "rule(R)": it invokes fn and, on
// failure, rewinds the cursor to where it stood before the attempt, giving
// every rule function backtracking for free at its call site.
func attempt(c *cursor, fn func(*cursor) error) error {
	save := c.pos
	if err := fn(c); err != nil {
		c.pos = save
		return err
	}
	return nil
}

// parseRange is the BNF combinator primitive "range(min,max,element,sep)":
// it repeatedly parses element, optionally preceded by sep after the first
// element, until element or sep fails to match, and reports no_match if
// fewer than min repetitions were found. max <= 0 means unbounded.
func parseRange(c *cursor, min, max int, element func(*cursor) error, sep func(*cursor) error) (int, error) {
	count := 0
	for max <= 0 || count < max {
		restart := c.pos
		if count > 0 && sep != nil {
			if err := sep(c); err != nil {
				c.pos = restart
				break
			}
		}
		if err := element(c); err != nil {
			c.pos = restart
			break
		}
		count++
	}
	if count < min {
		return count, ErrNoMatch
	}
	return count, nil
}

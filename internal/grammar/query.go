package grammar

import "github.com/kyuri-go/uri/internal/charclass"

// parseQuery consumes the remainder of the cursor up to the first '#' (or
// EOF) as a query component (the text following the leading '?', which the
// caller has already consumed), validating characters against the generic
// query class and counting "&"-delimited key=value parameters per the
// micro-grammar in spec §4.1.
func parseQuery(c *cursor) (paramCount int, err error) {
	start := c.pos
	end := start
	for end < len(c.s) && c.s[end] != '#' {
		end++
	}
	raw := c.s[start:end]

	if err := validateQueryChars(raw, start); err != nil {
		c.pos = start
		return 0, err
	}

	count := countQueryParams(raw)
	c.pos = end
	return count, nil
}

func validateQueryChars(s []byte, start int) error {
	cur := &cursor{s: s, pos: 0}
	for !cur.eof() {
		b, _ := cur.peek()
		if b == '%' {
			if err := validatePctTriple(cur, start); err != nil {
				return err
			}
			continue
		}
		if !charclass.Query.Test(b) {
			return newRuleErr(ErrInvalidCharacter, "query", start+cur.pos)
		}
		cur.pos++
	}
	return nil
}

// countQueryParams counts "&"-delimited elements of a query string, so that
// even a query with no "=" (a single opaque blob, or one bare key) counts as
// one parameter, matching net/url-style query-string conventions.
func countQueryParams(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	count := 1
	for i := 0; i < len(s); i++ {
		if s[i] == '&' {
			count++
		} else if s[i] == '%' {
			i += 2
		}
	}
	return count
}

package grammar

import (
	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/parts"
)

// hostResult carries the classification produced by parseHost.
type hostResult struct {
	kind parts.HostKind
	ipv4 [4]byte
	ipv6 [16]byte
}

// parseHost classifies and validates a host span already isolated by
// parseAuthority (an IP-literal keeps its brackets): '[' IP-literal /
// IPv4address / reg-name, tried in that order per RFC 3986 §3.2.2's "first
// match" intent.
func parseHost(s []byte, start int) (hostResult, error) {
	if len(s) > 0 && s[0] == '[' {
		c := &cursor{s: s, pos: 0}
		lit, err := parseIPLiteral(c)
		if err != nil {
			if re, ok := err.(*RuleError); ok {
				return hostResult{}, newRuleErr(re.Kind, re.Rule, start+re.Offset)
			}
			return hostResult{}, err
		}
		if !c.eof() {
			return hostResult{}, newRuleErr(ErrInvalidCharacter, "IP-literal", start)
		}
		return hostResult{kind: lit.kind, ipv6: lit.ipv6}, nil
	}

	if v4, ok := tryParseIPv4Exact(s); ok {
		return hostResult{kind: parts.HostIPv4, ipv4: v4}, nil
	}

	if err := validateRegNameChars(s, start); err != nil {
		return hostResult{}, err
	}
	return hostResult{kind: parts.HostName}, nil
}

// tryParseIPv4Exact reports whether s is entirely consumed by the
// IPv4address production; a reg-name that happens to look like digits and
// dots but has trailing garbage falls through to reg-name validation
// instead, matching the "a reg-name ... is ambiguous with IPv4address"
// resolution used by the original implementation.
func tryParseIPv4Exact(s []byte) ([4]byte, bool) {
	var out [4]byte
	c := &cursor{s: s, pos: 0}
	if err := parseIPv4(c, &out); err != nil || !c.eof() {
		return [4]byte{}, false
	}
	return out, true
}

func validateRegNameChars(s []byte, start int) error {
	c := &cursor{s: s, pos: 0}
	for !c.eof() {
		b, _ := c.peek()
		if b == '%' {
			if err := validatePctTriple(c, start); err != nil {
				return err
			}
			continue
		}
		if !charclass.RegName.Test(b) {
			return newRuleErr(ErrInvalidCharacter, "reg-name", start+c.pos)
		}
		c.pos++
	}
	return nil
}

package grammar

import (
	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/parts"
)

// ValidateComponent validates text in isolation against component c's own
// grammar production, independent of any surrounding URI context (scheme
// presence, authority presence, and so on). It is the gate a component
// override must pass before uri.URI.SetEncoded splices it into a candidate
// URI-reference string: without it, an override like a Host value of
// "evil.com/x" would sail through untouched here and only be caught (if at
// all) by the whole-string re-parse, which instead just reinterprets the
// "/x" as the start of Path and silently reshapes the URI instead of
// failing the call.
func ValidateComponent(c parts.Component, text []byte) error {
	switch c {
	case parts.Scheme:
		return validateSchemeChars(text)
	case parts.User, parts.Pass:
		return validateUserInfoChars(text, 0)
	case parts.Host:
		_, err := parseHost(text, 0)
		return err
	case parts.Port:
		_, err := parsePort(text, 0)
		return err
	case parts.Path:
		return validatePathChars(text)
	case parts.Query, parts.Fragment:
		return validateQueryChars(text, 0)
	default:
		return nil
	}
}

// validateSchemeChars treats an empty value as valid: SetEncoded(Scheme,
// nil) is how a caller clears the scheme entirely, and rebuild already
// interprets a zero-length scheme override as "no scheme" rather than
// splicing an empty one in.
func validateSchemeChars(s []byte) error {
	if len(s) == 0 {
		return nil
	}
	if !charclass.SchemeStart.Test(s[0]) {
		return newRuleErr(ErrInvalidCharacter, "scheme", 0)
	}
	for i := 1; i < len(s); i++ {
		if !charclass.SchemeContinue.Test(s[i]) {
			return newRuleErr(ErrInvalidCharacter, "scheme", i)
		}
	}
	return nil
}

func validatePathChars(s []byte) error {
	for _, seg := range splitPathSegments(s) {
		if err := validateClass(seg.text, charclass.PathSegment, seg.offset); err != nil {
			return err
		}
	}
	return nil
}

package grammar

import "github.com/kyuri-go/uri/internal/charclass"

// maxPortValue is the largest value representable by the 16-bit PortNumber
// field; ports with more digits than this can represent still parse (per
// the generic "port = *DIGIT" grammar) but PortNumber is left at 0.
const maxPortValue = 65535

// parsePort validates that s consists only of digits (the "port" production
// is "*DIGIT", so an empty port is legal) and returns its numeric value when
// it fits in 16 bits.
func parsePort(s []byte, start int) (uint16, error) {
	for i, b := range s {
		if !charclass.Digit.Test(b) {
			return 0, newRuleErr(ErrInvalidPort, "port", start+i)
		}
	}
	if len(s) == 0 || len(s) > 5 {
		return 0, nil
	}
	v := 0
	for _, b := range s {
		v = v*10 + int(b-'0')
	}
	if v > maxPortValue {
		return 0, nil
	}
	return uint16(v), nil
}

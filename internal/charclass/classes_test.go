package charclass_test

import (
	"testing"

	"github.com/kyuri-go/uri/internal/charclass"
)

func TestSetTest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  charclass.Set
		in   string
		out  string
	}{
		{"unreserved", charclass.Unreserved, "abcXYZ019-._~", "!@#$%^&*()"},
		{"subdelims", charclass.SubDelims, "!$&'()*+,;=", "abc/?#"},
		{"gendelims", charclass.GenDelims, ":/?#[]@", "abc-._~"},
		{"pchar", charclass.PChar, "abc019-._~!$&'()*+,;=:@", "/?# "},
		{"regname", charclass.RegName, "abc019-._~!$&'()*+,;=", ":/?#[]@ "},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for i := 0; i < len(c.in); i++ {
				if !c.set.Test(c.in[i]) {
					t.Errorf("Test(%q) = false, want true", c.in[i])
				}
			}
			for i := 0; i < len(c.out); i++ {
				if c.set.Test(c.out[i]) {
					t.Errorf("Test(%q) = true, want false", c.out[i])
				}
			}
		})
	}
}

func TestSetWithoutAndUnion(t *testing.T) {
	t.Parallel()

	noAt := charclass.PChar.Without("@")
	if noAt.Test('@') {
		t.Error("Without(\"@\") still reports '@' as a member")
	}
	if !noAt.Test('a') {
		t.Error("Without(\"@\") dropped an unrelated member")
	}

	u := charclass.Digit.Union(charclass.Alpha)
	if !u.Test('5') || !u.Test('z') {
		t.Error("Union did not include members of either operand")
	}
	if u.Test('-') {
		t.Error("Union included a byte absent from both operands")
	}
}

package pctencode_test

import (
	"testing"

	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/pctencode"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		allowed charclass.Set
		want    string
	}{
		{"empty", "", charclass.Unreserved, ""},
		{"no escape needed", "abc-._~", charclass.Unreserved, "abc-._~"},
		{"escapes disallowed", "a b", charclass.Unreserved, "a%20b"},
		{"passes through valid triple", "a%2fb", charclass.Unreserved, "a%2fb"},
		{"escapes lone percent", "100%", charclass.Unreserved, "100%25"},
		{"escapes at symbol for path setter", "a@b.com", charclass.Path.Without("@"), "a%40b.com"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := string(pctencode.Encode(nil, []byte(c.in), c.allowed)); got != c.want {
				t.Errorf("Encode(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"no escapes", "abc", "abc", false},
		{"decodes triple", "a%20b", "a b", false},
		{"lowercase hex", "a%2fb", "a/b", false},
		{"truncated escape", "a%2", "", true},
		{"non-hex escape", "a%zz", "", true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := pctencode.Decode(nil, []byte(c.in))
			if (err != nil) != c.wantErr {
				t.Fatalf("Decode(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
			}
			if err == nil && string(got) != c.want {
				t.Errorf("Decode(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestDecodedLen(t *testing.T) {
	t.Parallel()

	n, err := pctencode.DecodedLen([]byte("a%20b%2fc"))
	if err != nil {
		t.Fatalf("DecodedLen error = %v", err)
	}
	if n != 5 {
		t.Errorf("DecodedLen = %d, want 5", n)
	}

	if _, err := pctencode.DecodedLen([]byte("a%2")); err == nil {
		t.Error("DecodedLen accepted a truncated escape")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := pctencode.Validate([]byte("abc%2f"), charclass.Unreserved); err != nil {
		t.Errorf("Validate rejected a valid unreserved+pct-encoded string: %v", err)
	}
	if err := pctencode.Validate([]byte("a b"), charclass.Unreserved); err == nil {
		t.Error("Validate accepted a raw disallowed byte")
	}
}

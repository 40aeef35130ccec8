package uri

import (
	"fmt"
	"io"
)

// IsSpecial reports whether v's scheme is one of the small set of
// well-known schemes with a cached fast-path classification (http(s),
// ws(s), ftp, file). It is a derived convenience over SchemeKind and never
// affects serialization.
func (v View) IsSpecial() bool { return v.HasScheme() && v.SchemeKind() != SchemeOther }

// IsSpecial reports whether u's scheme is one of the well-known schemes.
func (u *URI) IsSpecial() bool { return u.View().IsSpecial() }

// MarshalText implements encoding.TextMarshaler, returning the exact
// serialized form.
func (v View) MarshalText() ([]byte, error) {
	return append([]byte(nil), v.data...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing text into a
// freshly owned copy (text may be reused by the caller after this call
// returns, so it is never aliased).
func (v *View) UnmarshalText(text []byte) error {
	nv, err := Parse(append([]byte(nil), text...))
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// Format implements fmt.Formatter: %s and %v print the serialized form,
// %q prints it quoted.
func (v View) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", v.String())
	default:
		io.WriteString(f, v.String())
	}
}

// MarshalText implements encoding.TextMarshaler, returning the exact
// serialized form.
func (u *URI) MarshalText() ([]byte, error) {
	return append([]byte(nil), u.data...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing u's contents
// with the parse of text; on failure u is left unchanged (strong
// guarantee, same as every other mutator).
func (u *URI) UnmarshalText(text []byte) error {
	return u.commit(string(text))
}

// Format implements fmt.Formatter: %s and %v print the serialized form,
// %q prints it quoted.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", u.String())
	default:
		io.WriteString(f, u.String())
	}
}

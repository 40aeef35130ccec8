package uri

import (
	"braces.dev/errtrace"

	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/parts"
	"github.com/kyuri-go/uri/internal/pctencode"
)

// Normalize rewrites u in place to its syntactic normal form per RFC 3986
// §6.2.2: the scheme is lower-cased, every percent-encoded hex pair is
// upper-cased, percent-encoded unreserved bytes are decoded back to their
// literal form, "." and ".." path segments are removed per §5.2.4, and an
// empty path is rewritten to "/" when an authority is present. Normalize is
// idempotent. It does not case-fold reg-name bytes (spec §9 Open Question
// (a) leaves that out of scope).
func (u *URI) Normalize() error {
	v := u.View()
	overrides := map[Component][]byte{}

	if v.HasScheme() {
		overrides[parts.Scheme] = lowerASCII(v.Encoded(parts.Scheme))
	}
	if v.HasUser() {
		overrides[parts.User] = renormalize(v.Encoded(parts.User), charclass.UserInfo)
	}
	if v.HasPassword() {
		overrides[parts.Pass] = renormalize(v.Encoded(parts.Pass), charclass.UserInfo)
	}
	if v.HostKind() == HostName {
		overrides[parts.Host] = renormalize(v.Encoded(parts.Host), charclass.RegName)
	}
	if v.HasQuery() {
		overrides[parts.Query] = renormalize(v.Encoded(parts.Query), charclass.Query)
	}
	if v.HasFragment() {
		overrides[parts.Fragment] = renormalize(v.Encoded(parts.Fragment), charclass.Fragment)
	}

	path, err := normalizedPath(v)
	if err != nil {
		return err
	}
	overrides[parts.Path] = path

	return u.rebuild(overrides)
}

func lowerASCII(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

// renormalize decodes every "%HH" triple of an already-encoded span whose
// byte is unreserved and upper-cases the hex pair of every other triple;
// literal bytes are copied unchanged. class is the component's allowed
// class, which always contains the unreserved bytes it decodes to.
func renormalize(encoded []byte, class charclass.Set) []byte {
	out := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		if encoded[i] != '%' {
			out = append(out, encoded[i])
			continue
		}
		dec, err := pctencode.Decode(nil, encoded[i:min(i+3, len(encoded))])
		if err != nil {
			return encoded
		}
		if charclass.Unreserved.Test(dec[0]) && class.Test(dec[0]) {
			out = append(out, dec[0])
		} else {
			out = pctencode.Encode(out, dec, charclass.Set{})
		}
		i += 2
	}
	return out
}

// normalizedPath removes "." and ".." segments (comparing decoded segment
// text, so a percent-encoded dot segment like "%2e%2e" is recognized) and
// collapses an empty path to "/" when an authority is present.
func normalizedPath(v View) ([]byte, error) {
	segs := v.PathSegments()
	var out [][]byte
	for _, s := range segs {
		dec, err := s.Decoded()
		if err != nil {
			return nil, errtrace.Wrap(Error(pctencode.ErrInvalidPctEncoding))
		}
		switch dec {
		case ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			continue
		default:
			out = append(out, renormalize(s.Encoded, charclass.PathSegment))
		}
	}

	leadingSlash := v.PathForm() == PathAbempty || v.PathForm() == PathAbsolute
	if len(out) == 0 && v.HasAuthority() {
		leadingSlash = true
	}

	var b []byte
	if leadingSlash {
		b = append(b, '/')
	}
	for i, s := range out {
		if i > 0 {
			b = append(b, '/')
		}
		b = append(b, s...)
	}
	return b, nil
}

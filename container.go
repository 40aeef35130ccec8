package uri

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/kyuri-go/uri/internal/charclass"
	"github.com/kyuri-go/uri/internal/grammar"
	"github.com/kyuri-go/uri/internal/parts"
	"github.com/kyuri-go/uri/internal/pctencode"
	"github.com/kyuri-go/uri/internal/storage"
)

// URI is an owning, mutable URI-reference: a single contiguous serialized
// buffer plus its component index. Every setter re-validates and re-splices
// the buffer while preserving the strong guarantee — on error, the URI is
// left bit-identical to its state before the call.
type URI struct {
	buf   []byte // storage-backed; len(buf) >= len(data)+1, buf[len(data)] == 0
	data  []byte // buf[:len], the serialized form without its trailing NUL
	idx   *parts.Index
	store storage.Storage
}

// New returns an empty URI ready for component-wise construction.
func New(opts ...Option) *URI {
	u := &URI{store: storage.Heap{}, idx: &parts.Index{}}
	for _, opt := range opts {
		opt(u)
	}
	buf, err := u.store.Allocate(1)
	if err != nil {
		buf = make([]byte, 1)
	}
	u.buf = buf[:1]
	u.data = u.buf[:0]
	return u
}

// ParseURI parses s and returns an owning URI, copying s's bytes into a
// storage-backed buffer.
func ParseURI[T ~string | ~[]byte](s T, opts ...Option) (*URI, error) {
	u := New(opts...)
	if err := u.commit(string(s)); err != nil {
		return nil, err
	}
	return u, nil
}

// View returns a read-only View over the URI's current bytes. The View is
// invalidated by any subsequent mutator call.
func (u *URI) View() View { return View{data: u.data, idx: u.idx} }

// String returns the exact serialized form.
func (u *URI) String() string { return string(u.data) }

// Len returns the serialized length.
func (u *URI) Len() int { return len(u.data) }

// Storage returns the allocator handle backing this URI, for identity
// comparison against a caller-held handle.
func (u *URI) Storage() storage.Storage { return u.store }

// commit validates full as a complete URI-reference and, on success,
// splices it into a storage-backed buffer sized with the allocation
// policy's geometric growth and replaces u's state; on failure u is left
// untouched (strong guarantee).
func (u *URI) commit(full string) error {
	idx, err := grammar.Parse(full)
	if err != nil {
		return wrapParseErr(err)
	}
	needed := len(full) + 1
	if needed > len(u.buf) {
		newCap := needed
		if cur := len(u.buf); newCap < 2*cur {
			newCap = 2 * cur
		}
		nb, err := u.store.Allocate(newCap)
		if err != nil {
			return errtrace.Wrap(ErrAllocationFailed)
		}
		if u.buf != nil {
			u.store.Deallocate(u.buf)
		}
		u.buf = nb[:newCap]
	}
	copy(u.buf, full)
	u.buf[len(full)] = 0
	u.data = u.buf[:len(full)]
	u.idx = idx
	logger.Debug("uri: committed", slog.Int("len", len(full)))
	return nil
}

// rebuild reconstructs the full serialized URI-reference from the current
// component texts with the given overrides applied, and commits it. An
// authority ("//...") is written iff the resulting host, user, pass or port
// is non-empty, matching the presence rules in spec §4.5.
func (u *URI) rebuild(overrides map[Component][]byte) error {
	v := u.View()

	scheme := v.Encoded(parts.Scheme)
	hasScheme := v.HasScheme()
	if ov, ok := overrides[parts.Scheme]; ok {
		scheme = ov
		hasScheme = len(ov) > 0
	}

	user := v.Encoded(parts.User)
	hasUser := v.HasUser()
	if ov, ok := overrides[parts.User]; ok {
		user = ov
		hasUser = len(ov) > 0
	}
	pass := v.Encoded(parts.Pass)
	hasPass := v.HasPassword()
	if ov, ok := overrides[parts.Pass]; ok {
		pass = ov
		hasPass = len(ov) > 0
	}
	host := v.Encoded(parts.Host)
	if ov, ok := overrides[parts.Host]; ok {
		host = ov
	}
	port := v.Encoded(parts.Port)
	hasPort := v.HasPort()
	if ov, ok := overrides[parts.Port]; ok {
		port = ov
		hasPort = len(ov) > 0
	}
	hostPresent := len(host) > 0 || hasUser || hasPass || hasPort

	path := v.Encoded(parts.Path)
	if ov, ok := overrides[parts.Path]; ok {
		path = ov
	}

	query := v.Encoded(parts.Query)
	hasQuery := v.HasQuery()
	if ov, ok := overrides[parts.Query]; ok {
		query = ov
		hasQuery = len(ov) > 0
	}

	fragment := v.Encoded(parts.Fragment)
	hasFragment := v.HasFragment()
	if ov, ok := overrides[parts.Fragment]; ok {
		fragment = ov
		hasFragment = len(ov) > 0
	}

	var b []byte
	if hasScheme {
		b = append(b, scheme...)
		b = append(b, ':')
	}
	if hostPresent {
		b = append(b, '/', '/')
		if hasUser || hasPass {
			b = append(b, user...)
			if hasPass {
				b = append(b, ':')
				b = append(b, pass...)
			}
			b = append(b, '@')
		}
		b = append(b, host...)
		if hasPort {
			b = append(b, ':')
			b = append(b, port...)
		}
	}
	b = append(b, path...)
	if hasQuery {
		b = append(b, '?')
		b = append(b, query...)
	}
	if hasFragment {
		b = append(b, '#')
		b = append(b, fragment...)
	}
	return u.commit(string(b))
}

// SetEncoded sets component c's raw text to value, which must already
// satisfy c's grammar production; failure leaves u unchanged. value is
// validated against c's own production in isolation before it is spliced
// into the candidate URI string, so a malformed override is rejected with
// the specific error its own grammar raises instead of being silently
// reshaped by the whole-string re-parse that follows in rebuild.
func (u *URI) SetEncoded(c Component, value []byte) error {
	if err := grammar.ValidateComponent(c, value); err != nil {
		return wrapParseErr(err)
	}
	return u.rebuild(map[Component][]byte{c: append([]byte(nil), value...)})
}

// Set percent-encodes decoded against c's allowed character class and sets
// it as component c's value.
func (u *URI) Set(c Component, decoded []byte) error {
	encoded := pctencode.Encode(nil, decoded, allowedClassFor(c))
	return u.SetEncoded(c, encoded)
}

// allowedClassFor returns the percent-encoding allowed class used when a
// decoded value is written to component c.
func allowedClassFor(c Component) charclass.Set {
	switch c {
	case parts.Scheme:
		return charclass.SchemeContinue
	case parts.User, parts.Pass:
		return charclass.UserInfo
	case parts.Host:
		return charclass.RegName
	case parts.Port:
		return charclass.Digit
	case parts.Path:
		// '@' is pchar-legal unescaped, but a decoded path setter always
		// escapes it: it is easy to mistake a rootless path's leading
		// segment for userinfo once serialized.
		return charclass.Path.Without("@")
	case parts.Query, parts.Fragment:
		return charclass.Query
	default:
		return charclass.Unreserved
	}
}

package uri

import "github.com/kyuri-go/uri/internal/storage"

// Option configures a URI constructed by New or ParseURI.
type Option func(*URI)

// WithStorage selects the allocator a URI uses for its serialized buffer.
// The default is a pooled heap allocator; pass storage.NewInline() for a
// stack-friendly URI with a bounded, single fixed-capacity allocation.
func WithStorage(s storage.Storage) Option {
	return func(u *URI) { u.store = s }
}

// Package uri parses, inspects, mutates and re-serializes URI references
// per RFC 3986, along with the common key=value&... query-parameter
// convention layered on top of the generic query grammar.
//
// A View is a non-owning read-only façade over an already-encoded byte
// span. A URI is the owning, mutable counterpart: it holds a single
// contiguous serialized buffer plus a component index, and every setter
// re-splices that buffer while preserving RFC 3986 validity.
package uri

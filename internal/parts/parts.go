// Package parts defines the component index shared by the grammar engine
// (which populates it while parsing) and the public uri package (which
// exposes it as a read-only/mutable facade).
package parts

// Component identifies one of the eight syntactic components of a URI
// reference, in their fixed, serialized order.
type Component int

const (
	Scheme Component = iota
	User
	Pass
	Host
	Port
	Path
	Query
	Fragment

	// NumComponents is the number of tracked components.
	NumComponents = 8
)

func (c Component) String() string {
	switch c {
	case Scheme:
		return "scheme"
	case User:
		return "user"
	case Pass:
		return "pass"
	case Host:
		return "host"
	case Port:
		return "port"
	case Path:
		return "path"
	case Query:
		return "query"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// HostKind classifies the syntactic form of the host component.
type HostKind int

const (
	HostNone HostKind = iota
	HostName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostName:
		return "name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostIPvFuture:
		return "ipvfuture"
	default:
		return "none"
	}
}

// PathForm records which RFC 3986 path sub-production was used, selected by
// the surrounding grammar context (scheme/authority presence).
type PathForm int

const (
	PathAbempty PathForm = iota
	PathAbsolute
	PathNoScheme
	PathRootless
	PathEmptyForm
)

// SchemeKind is a cached fast-path classification of well-known schemes,
// purely a derived convenience (see SPEC_FULL.md); it never affects
// serialization.
type SchemeKind int

const (
	SchemeOther SchemeKind = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
)

// Index is the fixed-size table of offsets delimiting the eight URI
// components inside a serialized buffer, plus the per-component cached
// metadata needed to answer accessors without rescanning.
//
// Offset[i] is the start of component i (and the end of component i-1);
// Offset[0] is always 0 and Offset[8] is always the serialized length. Per
// the invariant that a prefix delimiter belongs to the component it
// introduces, each span (other than Scheme, whose ':' is a suffix with
// nothing preceding it to own the delimiter) absorbs its own leading
// delimiter: User absorbs the authority marker "//", Pass its leading ':',
// Host its leading '@', Port its leading ':', Query its leading '?',
// Fragment its leading '#'. Because "//" can be present with no username
// text following it (e.g. "//host"), and similarly for the other optional
// delimiters, span length alone cannot say whether the underlying value is
// present — that is what the explicit Has* flags below are for.
type Index struct {
	Offset        [NumComponents + 1]int
	DecodedLength [NumComponents]int

	HasAuthorityFlag bool
	HasUserFlag      bool
	HasPasswordFlag  bool
	HasPortFlag      bool
	HasQueryFlag     bool
	HasFragmentFlag  bool

	HostKind HostKind
	IPv4     [4]byte
	IPv6     [16]byte

	SegmentCount int
	ParamCount   int
	PortNumber   uint16

	PathForm   PathForm
	SchemeKind SchemeKind
}

// Len returns the serialized length spanned by the index.
func (idx *Index) Len() int { return idx.Offset[NumComponents] }

// Span returns the raw [start,end) byte range of component c, including its
// delimiter.
func (idx *Index) Span(c Component) (int, int) {
	return idx.Offset[c], idx.Offset[c+1]
}

// HasScheme reports whether a scheme is present.
func (idx *Index) HasScheme() bool { return idx.Offset[User] > 0 }

// HasAuthority reports whether an authority ("//...") is present.
func (idx *Index) HasAuthority() bool { return idx.HasAuthorityFlag }

// HasUser reports whether a username is present in the userinfo.
func (idx *Index) HasUser() bool { return idx.HasUserFlag }

// HasPassword reports whether a password is present in the userinfo.
func (idx *Index) HasPassword() bool { return idx.HasPasswordFlag }

// HasPort reports whether a port is present.
func (idx *Index) HasPort() bool { return idx.HasPortFlag }

// HasQuery reports whether a query is present.
func (idx *Index) HasQuery() bool { return idx.HasQueryFlag }

// HasFragment reports whether a fragment is present.
func (idx *Index) HasFragment() bool { return idx.HasFragmentFlag }

// ComponentDelimLen returns the number of delimiter bytes folded into
// component c's span (a suffix for Scheme, a prefix for every other
// component), so accessors can strip them to recover the bare value text.
func (idx *Index) ComponentDelimLen(c Component) int {
	switch c {
	case Scheme:
		if idx.HasScheme() {
			return 1
		}
		return 0
	case User:
		if idx.HasAuthority() {
			return 2 // "//"
		}
		return 0
	case Pass:
		if idx.HasPassword() {
			return 1
		}
		return 0
	case Host:
		if idx.HasUser() || idx.HasPassword() {
			return 1 // "@"
		}
		return 0
	case Port:
		if idx.HasPort() {
			return 1
		}
		return 0
	case Query:
		if idx.HasQuery() {
			return 1
		}
		return 0
	case Fragment:
		if idx.HasFragment() {
			return 1
		}
		return 0
	default:
		return 0
	}
}

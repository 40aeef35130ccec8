package uri

import "github.com/kyuri-go/uri/internal/parts"

// Component identifies one of the eight syntactic components of a URI
// reference, in their fixed serialized order.
type Component = parts.Component

// The tracked components, in serialized order.
const (
	Scheme   = parts.Scheme
	User     = parts.User
	Pass     = parts.Pass
	Host     = parts.Host
	Port     = parts.Port
	Path     = parts.Path
	Query    = parts.Query
	Fragment = parts.Fragment
)

// HostKind classifies the syntactic form of the host component.
type HostKind = parts.HostKind

const (
	HostNone      = parts.HostNone
	HostName      = parts.HostName
	HostIPv4      = parts.HostIPv4
	HostIPv6      = parts.HostIPv6
	HostIPvFuture = parts.HostIPvFuture
)

// PathForm records which RFC 3986 path sub-production a URI's path uses.
type PathForm = parts.PathForm

const (
	PathAbempty   = parts.PathAbempty
	PathAbsolute  = parts.PathAbsolute
	PathNoScheme  = parts.PathNoScheme
	PathRootless  = parts.PathRootless
	PathEmptyForm = parts.PathEmptyForm
)

// SchemeKind is a fast-path classification of a handful of well-known
// schemes; it is a derived convenience and never affects serialization.
type SchemeKind = parts.SchemeKind

const (
	SchemeOther = parts.SchemeOther
	SchemeHTTP  = parts.SchemeHTTP
	SchemeHTTPS = parts.SchemeHTTPS
	SchemeWS    = parts.SchemeWS
	SchemeWSS   = parts.SchemeWSS
	SchemeFTP   = parts.SchemeFTP
	SchemeFile  = parts.SchemeFile
)

package framer

// Authenticator is a declarative description of how credentials are
// presented on a request. Authenticators are compared by identity when
// collected into security definitions; the swagger package dispatches on
// their concrete type to produce the definition itself.
type Authenticator interface {
	// AuthenticatorName returns the short name used as the security
	// definition key in generated output.
	AuthenticatorName() string
}

// DefaultSecurityName is the security definition key used by header API
// key authenticators created without an explicit name.
const DefaultSecurityName = "sharedSecret"

// HeaderAPIKeyAuthenticator describes an API key presented in a request
// header.
type HeaderAPIKeyAuthenticator struct {
	header string
	name   string
}

// NewHeaderAPIKeyAuthenticator creates a header API key authenticator for
// the given header, keyed under DefaultSecurityName.
func NewHeaderAPIKeyAuthenticator(header string) *HeaderAPIKeyAuthenticator {
	return NewNamedHeaderAPIKeyAuthenticator(header, DefaultSecurityName)
}

// NewNamedHeaderAPIKeyAuthenticator creates a header API key authenticator
// with an explicit security definition key. Distinct authenticators in one
// table need distinct names.
func NewNamedHeaderAPIKeyAuthenticator(header, name string) *HeaderAPIKeyAuthenticator {
	return &HeaderAPIKeyAuthenticator{header: header, name: name}
}

// AuthenticatorName implements Authenticator.
func (a *HeaderAPIKeyAuthenticator) AuthenticatorName() string { return a.name }

// Header returns the name of the header carrying the API key.
func (a *HeaderAPIKeyAuthenticator) Header() string { return a.header }

type authMode int

const (
	authInherit authMode = iota
	authNone
	authExplicit
)

// RouteAuth selects which authenticator protects a route. The zero value
// inherits the table default; NoAuth marks the route as explicitly
// unauthenticated; Auth attaches a specific authenticator.
type RouteAuth struct {
	mode authMode
	auth Authenticator
}

// InheritAuth returns the selection that inherits the table default.
// It is the zero value of RouteAuth.
func InheritAuth() RouteAuth { return RouteAuth{} }

// NoAuth returns the selection that exempts the route from authentication
// even when the table has a default authenticator.
func NoAuth() RouteAuth { return RouteAuth{mode: authNone} }

// Auth returns the selection carrying a route-specific authenticator.
func Auth(a Authenticator) RouteAuth { return RouteAuth{mode: authExplicit, auth: a} }

// IsInherit reports whether the route inherits the table default.
func (ra RouteAuth) IsInherit() bool { return ra.mode == authInherit }

// IsNone reports whether the route is explicitly unauthenticated.
func (ra RouteAuth) IsNone() bool { return ra.mode == authNone }

// Authenticator returns the route-specific authenticator, if one is set.
func (ra RouteAuth) Authenticator() (Authenticator, bool) {
	return ra.auth, ra.mode == authExplicit
}

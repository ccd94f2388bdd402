package framer

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/h3kker/rebar/schema"
)

var (
	// ErrEmptyPath is returned when a route is registered without a path.
	ErrEmptyPath = errors.New("framer: route path is empty")

	// ErrEmptyMethod is returned when a route is registered without a method.
	ErrEmptyMethod = errors.New("framer: route method is empty")

	// ErrUnknownMethod is returned when a route's method is not a standard
	// HTTP verb.
	ErrUnknownMethod = errors.New("framer: unknown HTTP method")

	// ErrDuplicateRoute is returned when a (path, method) pair is
	// registered twice.
	ErrDuplicateRoute = errors.New("framer: route already registered")
)

// knownMethods are the HTTP verbs a route may use.
var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// Route is one HTTP method on one path, together with the schemas and
// metadata that describe it. Routes are immutable once registered.
type Route struct {
	// Path is the route pattern, with <name> or <type:name> placeholders.
	Path string

	// Method is the HTTP verb. It is upper-cased on registration.
	Method string

	// HandlerName becomes the operationId in generated output.
	HandlerName string

	// Description is optional documentation text for the handler.
	Description string

	// QueryString describes the accepted query parameters.
	QueryString schema.Schema

	// RequestBody describes the request body.
	RequestBody schema.Schema

	// Headers describes the accepted request headers.
	Headers schema.Schema

	// Marshal maps response status codes to response body schemas.
	Marshal map[int]schema.Schema

	// Auth selects the route's authenticator. The zero value inherits the
	// table default.
	Auth RouteAuth
}

// Framer is the route table: an ordered-by-path mapping from path to the
// per-method route definitions, plus an optional default authenticator.
// Build the table once; it must not be mutated while generation reads it.
type Framer struct {
	paths                map[string]map[string]Route
	defaultAuthenticator Authenticator
}

// New creates an empty route table.
func New() *Framer {
	return &Framer{paths: make(map[string]map[string]Route)}
}

// Handles registers a route. The route's Marshal map is copied so later
// mutation by the caller cannot reach the table.
func (f *Framer) Handles(r Route) error {
	if r.Path == "" {
		return ErrEmptyPath
	}
	if r.Method == "" {
		return ErrEmptyMethod
	}

	r.Method = strings.ToUpper(r.Method)
	if !knownMethods[r.Method] {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, r.Method)
	}

	methods, ok := f.paths[r.Path]
	if !ok {
		methods = make(map[string]Route)
		f.paths[r.Path] = methods
	}
	if _, exists := methods[r.Method]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, r.Method, r.Path)
	}

	if r.Marshal != nil {
		marshal := make(map[int]schema.Schema, len(r.Marshal))
		for code, s := range r.Marshal {
			marshal[code] = s
		}
		r.Marshal = marshal
	}

	methods[r.Method] = r
	return nil
}

// SetDefaultAuthenticator sets the authenticator used by routes that do
// not select one of their own.
func (f *Framer) SetDefaultAuthenticator(a Authenticator) {
	f.defaultAuthenticator = a
}

// DefaultAuthenticator returns the table default authenticator, or nil.
func (f *Framer) DefaultAuthenticator() Authenticator {
	return f.defaultAuthenticator
}

// Paths returns the registered route paths in sorted order.
func (f *Framer) Paths() []string {
	paths := make([]string, 0, len(f.paths))
	for path := range f.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Methods returns the methods registered on a path, in sorted order.
func (f *Framer) Methods(path string) []string {
	routes := f.paths[path]
	methods := make([]string, 0, len(routes))
	for method := range routes {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// Route returns the definition registered for a (path, method) pair.
func (f *Framer) Route(path, method string) (Route, bool) {
	r, ok := f.paths[path][strings.ToUpper(method)]
	return r, ok
}

// Walk calls fn for every registered route, ordered by path and then by
// method, stopping at the first error.
func (f *Framer) Walk(fn func(Route) error) error {
	for _, path := range f.Paths() {
		for _, method := range f.Methods(path) {
			if err := fn(f.paths[path][method]); err != nil {
				return err
			}
		}
	}
	return nil
}

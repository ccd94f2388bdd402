package framer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h3kker/rebar/schema"
)

func TestHandles(t *testing.T) {
	t.Run("registers and retrieves a route", func(t *testing.T) {
		f := New()
		require.NoError(t, f.Handles(Route{
			Path:        "/foos",
			Method:      http.MethodGet,
			HandlerName: "list_foos",
		}))

		r, ok := f.Route("/foos", "GET")
		require.True(t, ok)
		assert.Equal(t, "list_foos", r.HandlerName)
	})

	t.Run("method is upper-cased", func(t *testing.T) {
		f := New()
		require.NoError(t, f.Handles(Route{Path: "/foos", Method: "get", HandlerName: "list_foos"}))

		r, ok := f.Route("/foos", "get")
		require.True(t, ok)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, []string{"GET"}, f.Methods("/foos"))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		err := New().Handles(Route{Method: "GET"})
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("rejects empty method", func(t *testing.T) {
		err := New().Handles(Route{Path: "/foos"})
		assert.ErrorIs(t, err, ErrEmptyMethod)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		err := New().Handles(Route{Path: "/foos", Method: "FIND"})
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})

	t.Run("rejects duplicate path and method", func(t *testing.T) {
		f := New()
		require.NoError(t, f.Handles(Route{Path: "/foos", Method: "GET"}))
		require.NoError(t, f.Handles(Route{Path: "/foos", Method: "POST"}))

		err := f.Handles(Route{Path: "/foos", Method: "get"})
		assert.ErrorIs(t, err, ErrDuplicateRoute)
	})

	t.Run("copies the marshal map", func(t *testing.T) {
		foo := schema.NewObject("Foo")
		marshal := map[int]schema.Schema{200: foo}

		f := New()
		require.NoError(t, f.Handles(Route{Path: "/foos", Method: "GET", Marshal: marshal}))

		marshal[404] = schema.NewObject("Error")

		r, _ := f.Route("/foos", "GET")
		assert.Len(t, r.Marshal, 1)
		assert.Same(t, foo, r.Marshal[200].(*schema.Object))
	})
}

func TestOrdering(t *testing.T) {
	f := New()
	for _, path := range []string{"/zoo", "/bar", "/foos"} {
		require.NoError(t, f.Handles(Route{Path: path, Method: "POST"}))
		require.NoError(t, f.Handles(Route{Path: path, Method: "GET"}))
	}

	assert.Equal(t, []string{"/bar", "/foos", "/zoo"}, f.Paths())
	assert.Equal(t, []string{"GET", "POST"}, f.Methods("/bar"))

	var visited []string
	require.NoError(t, f.Walk(func(r Route) error {
		visited = append(visited, r.Method+" "+r.Path)
		return nil
	}))
	assert.Equal(t, []string{
		"GET /bar", "POST /bar",
		"GET /foos", "POST /foos",
		"GET /zoo", "POST /zoo",
	}, visited)
}

func TestWalkStopsOnError(t *testing.T) {
	f := New()
	require.NoError(t, f.Handles(Route{Path: "/a", Method: "GET"}))
	require.NoError(t, f.Handles(Route{Path: "/b", Method: "GET"}))

	boom := errors.New("boom")
	calls := 0
	err := f.Walk(func(Route) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestDefaultAuthenticator(t *testing.T) {
	f := New()
	assert.Nil(t, f.DefaultAuthenticator())

	auth := NewHeaderAPIKeyAuthenticator("x-auth")
	f.SetDefaultAuthenticator(auth)
	assert.Same(t, auth, f.DefaultAuthenticator())
}

func TestRouteAuth(t *testing.T) {
	t.Run("zero value inherits", func(t *testing.T) {
		var a RouteAuth
		assert.True(t, a.IsInherit())
		assert.False(t, a.IsNone())
		_, ok := a.Authenticator()
		assert.False(t, ok)
	})

	t.Run("InheritAuth matches the zero value", func(t *testing.T) {
		assert.Equal(t, RouteAuth{}, InheritAuth())
	})

	t.Run("NoAuth", func(t *testing.T) {
		a := NoAuth()
		assert.False(t, a.IsInherit())
		assert.True(t, a.IsNone())
		_, ok := a.Authenticator()
		assert.False(t, ok)
	})

	t.Run("Auth carries the authenticator", func(t *testing.T) {
		auth := NewHeaderAPIKeyAuthenticator("x-auth")
		a := Auth(auth)
		assert.False(t, a.IsInherit())
		assert.False(t, a.IsNone())
		got, ok := a.Authenticator()
		require.True(t, ok)
		assert.Same(t, auth, got.(*HeaderAPIKeyAuthenticator))
	})
}

func TestHeaderAPIKeyAuthenticator(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		a := NewHeaderAPIKeyAuthenticator("x-auth")
		assert.Equal(t, "x-auth", a.Header())
		assert.Equal(t, DefaultSecurityName, a.AuthenticatorName())
	})

	t.Run("custom name", func(t *testing.T) {
		a := NewNamedHeaderAPIKeyAuthenticator("x-other", "otherSecret")
		assert.Equal(t, "x-other", a.Header())
		assert.Equal(t, "otherSecret", a.AuthenticatorName())
	})
}

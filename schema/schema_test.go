package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldType(t *testing.T) {
	t.Run("primitive names", func(t *testing.T) {
		assert.Equal(t, "string", String().Name())
		assert.Equal(t, "integer", Integer().Name())
		assert.Equal(t, "number", Number().Name())
		assert.Equal(t, "boolean", Boolean().Name())
		assert.Equal(t, "uuid", UUID().Name())
		assert.Equal(t, "datetime", DateTime().Name())
		assert.Equal(t, "money", Custom("money").Name())
	})

	t.Run("nested", func(t *testing.T) {
		inner := NewObject("Inner")
		ft := Nested(inner)

		nested, ok := ft.Nested()
		require.True(t, ok)
		assert.Same(t, inner, nested.(*Object))
		assert.Empty(t, ft.Name())

		_, ok = String().Nested()
		assert.False(t, ok)
	})

	t.Run("list", func(t *testing.T) {
		ft := List(Integer())

		elem, ok := ft.Elem()
		require.True(t, ok)
		assert.Equal(t, "integer", elem.Name())

		_, ok = String().Elem()
		assert.False(t, ok)
	})

	t.Run("list of nested", func(t *testing.T) {
		inner := NewObject("Inner")
		ft := List(Nested(inner))

		elem, ok := ft.Elem()
		require.True(t, ok)
		nested, ok := elem.Nested()
		require.True(t, ok)
		assert.Same(t, inner, nested.(*Object))
	})
}

func TestObject(t *testing.T) {
	o := NewObject("Foo",
		Field{Name: "uid", Type: String(), Required: true},
		Field{Name: "name", Type: String()},
	)

	assert.Equal(t, "Foo", o.SchemaTitle())

	fields := o.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "uid", fields[0].Name)
	assert.True(t, fields[0].Required)
	assert.Equal(t, "name", fields[1].Name)
	assert.False(t, fields[1].Required)
}

func TestListOf(t *testing.T) {
	foo := NewObject("Foo", Field{Name: "uid", Type: String()})
	envelope := ListOf(foo)

	assert.Equal(t, "ListOfFoo", envelope.SchemaTitle())

	fields := envelope.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "data", fields[0].Name)
	assert.False(t, fields[0].Required)

	elem, ok := fields[0].Type.Elem()
	require.True(t, ok)
	nested, ok := elem.Nested()
	require.True(t, ok)
	assert.Same(t, foo, nested.(*Object))
}

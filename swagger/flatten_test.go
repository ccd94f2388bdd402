package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenPrimitive(t *testing.T) {
	t.Run("passes through unchanged", func(t *testing.T) {
		in := &JSONSchema{Type: TypeInteger}

		out, defs, err := Flatten(in)
		require.NoError(t, err)
		assert.Equal(t, &JSONSchema{Type: TypeInteger}, out)
		assert.Empty(t, defs)
	})

	t.Run("does not alias the input", func(t *testing.T) {
		in := &JSONSchema{Type: TypeString, Format: "uuid"}

		out, _, err := Flatten(in)
		require.NoError(t, err)
		require.NotSame(t, in, out)

		out.Format = "changed"
		assert.Equal(t, "uuid", in.Format)
	})
}

func TestFlattenObject(t *testing.T) {
	t.Run("nested object becomes a reference", func(t *testing.T) {
		in := &JSONSchema{
			Type:  TypeObject,
			Title: "x",
			Properties: map[string]*JSONSchema{
				"a": {
					Type:  TypeObject,
					Title: "y",
					Properties: map[string]*JSONSchema{
						"b": {Type: TypeInteger},
					},
				},
				"b": {Type: TypeString},
			},
		}

		out, defs, err := Flatten(in)
		require.NoError(t, err)

		assert.Equal(t, &JSONSchema{Ref: "#/definitions/x"}, out)

		require.Len(t, defs, 2)
		assert.Equal(t, &JSONSchema{
			Type:  TypeObject,
			Title: "x",
			Properties: map[string]*JSONSchema{
				"a": {Ref: "#/definitions/y"},
				"b": {Type: TypeString},
			},
		}, defs["x"])
		assert.Equal(t, &JSONSchema{
			Type:  TypeObject,
			Title: "y",
			Properties: map[string]*JSONSchema{
				"b": {Type: TypeInteger},
			},
		}, defs["y"])
	})

	t.Run("input is never mutated", func(t *testing.T) {
		nested := &JSONSchema{
			Type:  TypeObject,
			Title: "inner",
			Properties: map[string]*JSONSchema{
				"b": {Type: TypeInteger},
			},
		}
		in := &JSONSchema{
			Type:       TypeObject,
			Title:      "outer",
			Properties: map[string]*JSONSchema{"a": nested},
		}

		_, _, err := Flatten(in)
		require.NoError(t, err)

		assert.Same(t, nested, in.Properties["a"])
		assert.Empty(t, nested.Ref)
	})

	t.Run("missing title fails", func(t *testing.T) {
		in := &JSONSchema{
			Type:       TypeObject,
			Properties: map[string]*JSONSchema{"a": {Type: TypeString}},
		}

		_, _, err := Flatten(in)
		assert.ErrorIs(t, err, ErrMissingTitle)
	})
}

func TestFlattenArray(t *testing.T) {
	t.Run("only the innermost object is extracted", func(t *testing.T) {
		in := &JSONSchema{
			Type:  TypeArray,
			Title: "x",
			Items: &JSONSchema{
				Type:  TypeArray,
				Title: "y",
				Items: &JSONSchema{
					Type:  TypeObject,
					Title: "z",
					Properties: map[string]*JSONSchema{
						"a": {Type: TypeInteger},
					},
				},
			},
		}

		out, defs, err := Flatten(in)
		require.NoError(t, err)

		assert.Equal(t, &JSONSchema{
			Type:  TypeArray,
			Title: "x",
			Items: &JSONSchema{
				Type:  TypeArray,
				Title: "y",
				Items: &JSONSchema{Ref: "#/definitions/z"},
			},
		}, out)

		require.Len(t, defs, 1)
		assert.Equal(t, &JSONSchema{
			Type:  TypeObject,
			Title: "z",
			Properties: map[string]*JSONSchema{
				"a": {Type: TypeInteger},
			},
		}, defs["z"])
	})

	t.Run("missing items fails", func(t *testing.T) {
		_, _, err := Flatten(&JSONSchema{Type: TypeArray, Title: "x"})
		assert.ErrorIs(t, err, ErrMissingItems)
	})
}

func TestFlattenUntyped(t *testing.T) {
	_, _, err := Flatten(&JSONSchema{Title: "x"})
	assert.ErrorIs(t, err, ErrUntypedFragment)
}

func TestFlattenCycle(t *testing.T) {
	t.Run("self-referential object", func(t *testing.T) {
		frag := &JSONSchema{
			Type:       TypeObject,
			Title:      "node",
			Properties: map[string]*JSONSchema{},
		}
		frag.Properties["next"] = frag

		_, _, err := Flatten(frag)

		var cyclic *CyclicSchemaError
		require.ErrorAs(t, err, &cyclic)
		assert.Equal(t, "node", cyclic.Title)
	})

	t.Run("cycle through an array", func(t *testing.T) {
		node := &JSONSchema{
			Type:       TypeObject,
			Title:      "tree",
			Properties: map[string]*JSONSchema{},
		}
		node.Properties["children"] = &JSONSchema{Type: TypeArray, Items: node}

		_, _, err := Flatten(node)

		var cyclic *CyclicSchemaError
		assert.ErrorAs(t, err, &cyclic)
	})

	t.Run("shared subtree is not a cycle", func(t *testing.T) {
		shared := &JSONSchema{
			Type:  TypeObject,
			Title: "shared",
			Properties: map[string]*JSONSchema{
				"v": {Type: TypeString},
			},
		}
		in := &JSONSchema{
			Type:  TypeObject,
			Title: "root",
			Properties: map[string]*JSONSchema{
				"a": shared,
				"b": shared,
			},
		}

		out, defs, err := Flatten(in)
		require.NoError(t, err)
		assert.Equal(t, &JSONSchema{Ref: "#/definitions/root"}, out)
		require.Len(t, defs, 2)
		assert.Equal(t, &JSONSchema{Ref: "#/definitions/shared"}, defs["root"].Properties["a"])
		assert.Equal(t, &JSONSchema{Ref: "#/definitions/shared"}, defs["root"].Properties["b"])
	})
}

package swagger

import (
	"reflect"

	"github.com/h3kker/rebar/schema"
)

// SchemaConverter converts one schema into a JSON-Schema fragment.
type SchemaConverter func(s schema.Schema) (*JSONSchema, error)

// ConverterRegistry maps concrete schema types to conversion functions and
// field type names to fragment prototypes. Four independently configured
// registries exist per generator, one per schema role (query string,
// request body, headers, responses), because input and output apply
// different field-level rules.
//
// A registry is configured during setup and read-only afterwards; Convert
// may be called concurrently once registration is done.
type ConverterRegistry struct {
	converters map[reflect.Type]SchemaConverter
	fieldTypes map[string]*JSONSchema

	// WireName selects the external name for a field. Defaults to the
	// field's Name when nil.
	WireName func(f schema.Field) string

	// Includes reports whether a field appears at all for this registry's
	// role. Defaults to including every field when nil.
	Includes func(f schema.Field) bool
}

func newConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: make(map[reflect.Type]SchemaConverter),
		fieldTypes: map[string]*JSONSchema{
			"string":   {Type: TypeString},
			"integer":  {Type: TypeInteger},
			"number":   {Type: TypeNumber},
			"boolean":  {Type: TypeBoolean},
			"uuid":     {Type: TypeString, Format: "uuid"},
			"datetime": {Type: TypeString, Format: "date-time"},
		},
	}
}

func newInputRegistry() *ConverterRegistry {
	r := newConverterRegistry()
	r.WireName = func(f schema.Field) string {
		if f.LoadFrom != "" {
			return f.LoadFrom
		}
		return f.Name
	}
	r.Includes = func(f schema.Field) bool { return !f.DumpOnly }
	return r
}

// NewQueryStringRegistry creates the registry used for query string
// schemas: fields take their LoadFrom alias and dump-only fields are
// hidden.
func NewQueryStringRegistry() *ConverterRegistry { return newInputRegistry() }

// NewRequestBodyRegistry creates the registry used for request body
// schemas, with the same input-side field rules as query strings.
func NewRequestBodyRegistry() *ConverterRegistry { return newInputRegistry() }

// NewHeadersRegistry creates the registry used for header schemas, with
// input-side field rules.
func NewHeadersRegistry() *ConverterRegistry { return newInputRegistry() }

// NewResponseRegistry creates the registry used for response schemas:
// fields take their DumpTo alias and load-only fields are hidden.
func NewResponseRegistry() *ConverterRegistry {
	r := newConverterRegistry()
	r.WireName = func(f schema.Field) string {
		if f.DumpTo != "" {
			return f.DumpTo
		}
		return f.Name
	}
	r.Includes = func(f schema.Field) bool { return !f.LoadOnly }
	return r
}

// RegisterConverter registers fn for the concrete type of proto. The
// registered function takes precedence over the structural default for
// *schema.Object.
func (r *ConverterRegistry) RegisterConverter(proto schema.Schema, fn SchemaConverter) {
	r.converters[reflect.TypeOf(proto)] = fn
}

// RegisterFieldType registers the fragment emitted for fields of the named
// type, replacing any previous entry. The fragment is cloned on every use.
func (r *ConverterRegistry) RegisterFieldType(name string, frag *JSONSchema) {
	r.fieldTypes[name] = frag
}

// Convert produces a JSON-Schema fragment for the schema. Dispatch is by
// the schema's concrete type; unregistered types fall back to the
// structural default for object schemas and otherwise fail with
// *UnsupportedSchemaError.
func (r *ConverterRegistry) Convert(s schema.Schema) (*JSONSchema, error) {
	if fn, ok := r.converters[reflect.TypeOf(s)]; ok {
		return fn(s)
	}
	if obj, ok := s.(*schema.Object); ok {
		return r.convertObject(obj)
	}
	return nil, &UnsupportedSchemaError{Schema: s}
}

// convertObject is the structural default: walk the declared fields in
// order, converting each field type and applying the registry's wire-name
// and visibility rules.
func (r *ConverterRegistry) convertObject(obj *schema.Object) (*JSONSchema, error) {
	out := &JSONSchema{
		Type:       TypeObject,
		Title:      obj.SchemaTitle(),
		Properties: make(map[string]*JSONSchema),
	}

	for _, f := range obj.Fields() {
		if r.Includes != nil && !r.Includes(f) {
			continue
		}

		frag, err := r.convertFieldType(f.Type)
		if err != nil {
			return nil, err
		}

		name := f.Name
		if r.WireName != nil {
			name = r.WireName(f)
		}

		out.Properties[name] = frag
		if f.Required {
			out.Required = append(out.Required, name)
		}
	}

	if len(out.Properties) == 0 {
		out.Properties = nil
	}

	return out, nil
}

func (r *ConverterRegistry) convertFieldType(t schema.FieldType) (*JSONSchema, error) {
	if nested, ok := t.Nested(); ok {
		return r.Convert(nested)
	}
	if elem, ok := t.Elem(); ok {
		items, err := r.convertFieldType(elem)
		if err != nil {
			return nil, err
		}
		return &JSONSchema{Type: TypeArray, Items: items}, nil
	}

	proto, ok := r.fieldTypes[t.Name()]
	if !ok {
		return nil, &UnsupportedFieldTypeError{Name: t.Name()}
	}
	return proto.Clone(), nil
}

package schema

// Schema is a named description of a data shape. Implementations are
// compared by identity: two routes referencing the same schema value share
// a single definition in generated output, while two schemas with identical
// fields but different titles stay distinct.
type Schema interface {
	// SchemaTitle returns the schema's name. Titles must be unique across
	// all schemas handed to a single generation run; they become keys in
	// the generated definitions table.
	SchemaTitle() string
}

// FieldType describes the type of a single field: a primitive type name,
// a nested schema, or a list of another field type.
type FieldType struct {
	name   string
	nested Schema
	elem   *FieldType
}

// String is a plain string field.
func String() FieldType { return FieldType{name: "string"} }

// Integer is an integer field.
func Integer() FieldType { return FieldType{name: "integer"} }

// Number is a floating point field.
func Number() FieldType { return FieldType{name: "number"} }

// Boolean is a boolean field.
func Boolean() FieldType { return FieldType{name: "boolean"} }

// UUID is a string field carrying a UUID.
func UUID() FieldType { return FieldType{name: "uuid"} }

// DateTime is a string field carrying an RFC 3339 timestamp.
func DateTime() FieldType { return FieldType{name: "datetime"} }

// Custom names a field type that a converter registry resolves through a
// registered field-type fragment.
func Custom(name string) FieldType { return FieldType{name: name} }

// Nested embeds another schema as the field's type.
func Nested(s Schema) FieldType { return FieldType{nested: s} }

// List is a homogeneous list of the given element type.
func List(elem FieldType) FieldType { return FieldType{elem: &elem} }

// Name returns the primitive type name, or "" for nested and list types.
func (t FieldType) Name() string { return t.name }

// Nested returns the nested schema, if this is a nested type.
func (t FieldType) Nested() (Schema, bool) { return t.nested, t.nested != nil }

// Elem returns the element type, if this is a list type.
func (t FieldType) Elem() (FieldType, bool) {
	if t.elem == nil {
		return FieldType{}, false
	}
	return *t.elem, true
}

// Field is one named member of an object schema.
type Field struct {
	Name     string
	Type     FieldType
	Required bool

	// LoadFrom is the external wire name used when the field is read from
	// a request (query string, headers, request body). Empty means Name.
	LoadFrom string

	// DumpTo is the external wire name used when the field is written to a
	// response. Empty means Name.
	DumpTo string

	// LoadOnly fields are accepted on input but never written to output.
	LoadOnly bool

	// DumpOnly fields appear in output but are not accepted on input.
	DumpOnly bool
}

// Object is a named schema with an ordered field list. Field order is the
// declaration order and is preserved through conversion.
type Object struct {
	title  string
	fields []Field
}

// NewObject creates an object schema with the given title and fields.
func NewObject(title string, fields ...Field) *Object {
	return &Object{title: title, fields: fields}
}

// SchemaTitle implements Schema.
func (o *Object) SchemaTitle() string { return o.title }

// Fields returns the object's fields in declaration order. The returned
// slice is shared; callers must not modify it.
func (o *Object) Fields() []Field { return o.fields }

// ListOf wraps an object schema in an envelope object holding a "data"
// array of the element schema. The envelope title is "ListOf" plus the
// element title.
func ListOf(o *Object) *Object {
	return NewObject("ListOf"+o.SchemaTitle(),
		Field{Name: "data", Type: List(Nested(o))},
	)
}

// Package schema defines declarative descriptions of data shapes used by
// route definitions: named objects with ordered fields, primitive field
// types, nested objects, and lists.
//
// Schemas describe shape only. They carry no validation or marshaling
// behavior; the swagger package introspects them to emit JSON Schema
// fragments, and identity (the schema pointer) is what deduplicates a
// schema shared between routes.
//
// A typical schema:
//
//	foo := schema.NewObject("Foo",
//	    schema.Field{Name: "uid", Type: schema.String()},
//	    schema.Field{Name: "name", Type: schema.String()},
//	)
//
// Fields can carry wire-name aliases that differ between input and output:
//
//	schema.Field{Name: "user_id", Type: schema.String(), Required: true, LoadFrom: "x-userid"}
//
// ListOf wraps an object schema in a standard envelope with a "data" array:
//
//	schema.ListOf(foo) // object "ListOfFoo" with {"data": [Foo, ...]}
package schema

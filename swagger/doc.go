// Package swagger generates Swagger v2.0 specification documents from a
// framer route table.
//
// Generation is a pure function of the route table and the generator's
// configuration: the table's schemas are converted to JSON-Schema
// fragments, nested named objects are flattened into one de-duplicated
// definitions table connected by $ref pointers, route paths are translated
// from <type:name> placeholders to {name} form, and authenticators become
// security definitions.
//
// # Generating a Document
//
//	foo := schema.NewObject("Foo",
//	    schema.Field{Name: "uid", Type: schema.String()},
//	    schema.Field{Name: "name", Type: schema.String()},
//	)
//
//	f := framer.New()
//	_ = f.Handles(framer.Route{
//	    Path:        "/foos/<foo_uid>",
//	    Method:      http.MethodGet,
//	    HandlerName: "get_foo",
//	    Marshal:     map[int]schema.Schema{200: foo},
//	})
//
//	gen := swagger.NewGenerator().
//	    SetHost("api.example.com").
//	    SetSchemes("https")
//
//	doc, err := gen.Generate(f)
//
// # Converter Registries
//
// Four independently configured registries convert schemas per role:
// query string, request body, headers, and responses. Input-side
// registries honor a field's LoadFrom alias and hide dump-only fields;
// the response registry honors DumpTo and hides load-only fields. Custom
// schema types and field types are registrable:
//
//	gen.ResponseRegistry().RegisterFieldType("money", &swagger.JSONSchema{
//	    Type: swagger.TypeString, Format: "decimal",
//	})
//
// # Security
//
// A table default authenticator becomes the document-level security
// requirement. Per route, security is a three-way choice: inheriting the
// default omits the operation's security key, framer.NoAuth() emits an
// empty requirement, and a route-specific authenticator emits a
// requirement naming it. Custom authenticator types need a registered
// converter:
//
//	gen.RegisterAuthenticatorConverter(&MyAuth{}, convertMyAuth)
//
// # Serving
//
// Handle registers JSON, YAML, and interactive docs endpoints for the
// generated document on a net/http ServeMux:
//
//	mux := http.NewServeMux()
//	gen.Handle(mux, "/swagger", f, nil)
//
// All conversion errors are programmer-facing setup errors: they mean a
// converter registration is missing, and generation aborts without
// returning a partial document.
package swagger

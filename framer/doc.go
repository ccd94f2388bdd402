// Package framer holds the route table: the set of (path, method) pairs
// with their request/response schemas, handler metadata, and authenticator
// selection. The table is the sole input to swagger generation.
//
// Route paths use embedded placeholders of the form <name> or <type:name>:
//
//	f := framer.New()
//	err := f.Handles(framer.Route{
//	    Path:        "/foos/<foo_uid>",
//	    Method:      http.MethodGet,
//	    HandlerName: "get_foo",
//	    Marshal:     map[int]schema.Schema{200: fooSchema},
//	})
//
// A route's authenticator is a three-way choice: inherit the table default
// (the zero value of RouteAuth), explicitly none, or a specific one:
//
//	framer.Route{..., Auth: framer.NoAuth()}
//	framer.Route{..., Auth: framer.Auth(apiKey)}
//
// The framer does not dispatch HTTP requests. Build the table once, then
// hand it read-only to swagger.Generator.
package framer

package swagger

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/h3kker/rebar/framer"
	"github.com/h3kker/rebar/schema"
)

// Generator assembles a Swagger v2.0 document from a route table. All
// configuration happens through the fluent setters before the first
// Generate call; afterwards the generator is read-only and safe for
// concurrent Generate calls.
type Generator struct {
	host     string
	schemes  []string
	consumes []string
	produces []string
	info     Info

	queryStringConverter *ConverterRegistry
	requestBodyConverter *ConverterRegistry
	headersConverter     *ConverterRegistry
	responseConverter    *ConverterRegistry

	pathConverterTypes map[string]string
	authConverters     map[reflect.Type]AuthenticatorConverter

	defaultResponseSchema schema.Schema
}

// NewGenerator creates a generator with default registries, localhost
// connection metadata, JSON media types, and a default error response
// schema with a single message field.
func NewGenerator() *Generator {
	return &Generator{
		host:     "localhost",
		schemes:  []string{"http"},
		consumes: []string{"application/json"},
		produces: []string{"application/json"},

		queryStringConverter: NewQueryStringRegistry(),
		requestBodyConverter: NewRequestBodyRegistry(),
		headersConverter:     NewHeadersRegistry(),
		responseConverter:    NewResponseRegistry(),

		pathConverterTypes: map[string]string{
			"uuid":   TypeString,
			"string": TypeString,
			"int":    TypeInteger,
			"float":  TypeNumber,
		},
		authConverters: map[reflect.Type]AuthenticatorConverter{
			reflect.TypeOf(&framer.HeaderAPIKeyAuthenticator{}): convertHeaderAPIKey,
		},

		defaultResponseSchema: schema.NewObject("Error",
			schema.Field{Name: "message", Type: schema.String()},
		),
	}
}

// SetHost sets the host name emitted into the document.
func (g *Generator) SetHost(host string) *Generator {
	g.host = host
	return g
}

// SetSchemes sets the transfer protocols of the API ("http", "https", ...).
func (g *Generator) SetSchemes(schemes ...string) *Generator {
	g.schemes = schemes
	return g
}

// SetConsumes sets the MIME types the API accepts.
func (g *Generator) SetConsumes(consumes ...string) *Generator {
	g.consumes = consumes
	return g
}

// SetProduces sets the MIME types the API returns.
func (g *Generator) SetProduces(produces ...string) *Generator {
	g.produces = produces
	return g
}

// SetInfo sets the document info section.
func (g *Generator) SetInfo(info Info) *Generator {
	g.info = info
	return g
}

// SetDefaultResponseSchema replaces the schema referenced by the "default"
// response entry emitted on every operation.
func (g *Generator) SetDefaultResponseSchema(s schema.Schema) *Generator {
	g.defaultResponseSchema = s
	return g
}

// QueryStringRegistry returns the registry used for query string schemas.
func (g *Generator) QueryStringRegistry() *ConverterRegistry { return g.queryStringConverter }

// RequestBodyRegistry returns the registry used for request body schemas.
func (g *Generator) RequestBodyRegistry() *ConverterRegistry { return g.requestBodyConverter }

// HeadersRegistry returns the registry used for header schemas.
func (g *Generator) HeadersRegistry() *ConverterRegistry { return g.headersConverter }

// ResponseRegistry returns the registry used for response schemas.
func (g *Generator) ResponseRegistry() *ConverterRegistry { return g.responseConverter }

// RegisterPathConverterType maps a path placeholder type to the swagger
// parameter type emitted for it. Unknown placeholder types fall back to
// "string".
func (g *Generator) RegisterPathConverterType(converter, swaggerType string) *Generator {
	g.pathConverterTypes[converter] = swaggerType
	return g
}

// RegisterAuthenticatorConverter registers fn for the concrete type of
// proto, replacing any previous converter for that type.
func (g *Generator) RegisterAuthenticatorConverter(proto framer.Authenticator, fn AuthenticatorConverter) *Generator {
	g.authConverters[reflect.TypeOf(proto)] = fn
	return g
}

// Generate produces a complete document from the route table. Output is
// deterministic for a fixed table and configuration. Conversion failures
// abort generation; a partial document is never returned.
func (g *Generator) Generate(f *framer.Framer) (*Document, error) {
	securityDefinitions, err := g.securityDefinitions(f)
	if err != nil {
		return nil, err
	}

	definitions, err := g.definitions(f)
	if err != nil {
		return nil, err
	}

	paths, err := g.paths(f)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Swagger:             "2.0",
		Info:                g.info,
		Host:                g.host,
		Schemes:             append([]string(nil), g.schemes...),
		Consumes:            append([]string(nil), g.consumes...),
		Produces:            append([]string(nil), g.produces...),
		SecurityDefinitions: securityDefinitions,
		Paths:               paths,
		Definitions:         definitions,
	}

	if def := f.DefaultAuthenticator(); def != nil {
		requirement, err := g.securityRequirement(def)
		if err != nil {
			return nil, err
		}
		doc.Security = requirement
	}

	return doc, nil
}

func (g *Generator) convertAuthenticator(a framer.Authenticator) (string, *SecurityScheme, error) {
	fn, ok := g.authConverters[reflect.TypeOf(a)]
	if !ok {
		return "", nil, &UnsupportedAuthenticatorError{Authenticator: a}
	}
	return fn(a)
}

// securityRequirement builds the requirement naming a's security
// definition key with no scopes.
func (g *Generator) securityRequirement(a framer.Authenticator) (*SecurityRequirement, error) {
	name, _, err := g.convertAuthenticator(a)
	if err != nil {
		return nil, err
	}
	return &SecurityRequirement{name: {}}, nil
}

// securityDefinitions collects the distinct authenticators referenced by
// any route, plus the table default, and converts each once.
func (g *Generator) securityDefinitions(f *framer.Framer) (map[string]*SecurityScheme, error) {
	seen := make(map[framer.Authenticator]bool)
	var authenticators []framer.Authenticator

	err := f.Walk(func(r framer.Route) error {
		a, ok := r.Auth.Authenticator()
		if !ok || seen[a] {
			return nil
		}
		seen[a] = true
		authenticators = append(authenticators, a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if def := f.DefaultAuthenticator(); def != nil && !seen[def] {
		authenticators = append(authenticators, def)
	}

	definitions := make(map[string]*SecurityScheme)
	for _, a := range authenticators {
		key, scheme, err := g.convertAuthenticator(a)
		if err != nil {
			return nil, err
		}
		definitions[key] = scheme
	}

	return definitions, nil
}

// definitions converts every distinct response and request body schema
// exactly once, identity-deduplicated, plus the default response schema,
// and merges the flattened deltas into one definitions table.
func (g *Generator) definitions(f *framer.Framer) (map[string]*JSONSchema, error) {
	seen := make(map[schema.Schema]bool)
	var converted []*JSONSchema

	if g.defaultResponseSchema != nil {
		frag, err := g.responseConverter.Convert(g.defaultResponseSchema)
		if err != nil {
			return nil, err
		}
		seen[g.defaultResponseSchema] = true
		converted = append(converted, frag)
	}

	err := f.Walk(func(r framer.Route) error {
		for _, code := range sortedCodes(r.Marshal) {
			s := r.Marshal[code]
			if seen[s] {
				continue
			}
			seen[s] = true
			frag, err := g.responseConverter.Convert(s)
			if err != nil {
				return err
			}
			converted = append(converted, frag)
		}

		if r.RequestBody != nil && !seen[r.RequestBody] {
			seen[r.RequestBody] = true
			frag, err := g.requestBodyConverter.Convert(r.RequestBody)
			if err != nil {
				return err
			}
			converted = append(converted, frag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	definitions := make(map[string]*JSONSchema)
	for _, frag := range converted {
		_, defs, err := Flatten(frag)
		if err != nil {
			return nil, err
		}
		for key, def := range defs {
			definitions[key] = def
		}
	}

	return definitions, nil
}

// paths builds the paths object: per-path parameters from the path
// placeholders, and one operation per registered method.
func (g *Generator) paths(f *framer.Framer) (map[string]*PathItem, error) {
	out := make(map[string]*PathItem)

	for _, path := range f.Paths() {
		swaggerPath, args := FormatPath(path)

		item := &PathItem{}
		out[swaggerPath] = item

		for _, arg := range args {
			item.Parameters = append(item.Parameters, &Parameter{
				Name:     arg.Name,
				In:       InPath,
				Required: true,
				Type:     g.pathArgType(arg.Type),
			})
		}

		for _, method := range f.Methods(path) {
			r, _ := f.Route(path, method)
			op, err := g.operation(r)
			if err != nil {
				return nil, err
			}
			if err := setOperation(item, method, op); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// pathArgType maps a path placeholder type to its swagger parameter type,
// defaulting to string for unknown placeholder types.
func (g *Generator) pathArgType(converter string) string {
	if t, ok := g.pathConverterTypes[converter]; ok {
		return t
	}
	return TypeString
}

// operation builds the operation object for one route: responses keyed by
// status code plus the always-present default entry, exploded query and
// header parameters, the body parameter, and the route's security override.
func (g *Generator) operation(r framer.Route) (*Operation, error) {
	op := &Operation{
		OperationID: r.HandlerName,
		Description: r.Description,
		Responses:   make(map[string]*Response),
	}

	if g.defaultResponseSchema != nil {
		op.Responses["default"] = &Response{
			Schema: refTo(g.defaultResponseSchema.SchemaTitle()),
		}
	}
	for code, s := range r.Marshal {
		op.Responses[strconv.Itoa(code)] = &Response{Schema: refTo(s.SchemaTitle())}
	}

	var parameters []*Parameter

	if r.QueryString != nil {
		frag, err := g.queryStringConverter.Convert(r.QueryString)
		if err != nil {
			return nil, err
		}
		params, err := explodeParameters(frag, InQuery)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, params...)
	}

	if r.RequestBody != nil {
		parameters = append(parameters, &Parameter{
			Name:     r.RequestBody.SchemaTitle(),
			In:       InBody,
			Required: true,
			Schema:   refTo(r.RequestBody.SchemaTitle()),
		})
	}

	if r.Headers != nil {
		frag, err := g.headersConverter.Convert(r.Headers)
		if err != nil {
			return nil, err
		}
		params, err := explodeParameters(frag, InHeader)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, params...)
	}

	op.Parameters = parameters

	switch {
	case r.Auth.IsNone():
		empty := SecurityRequirement{}
		op.Security = &empty
	case !r.Auth.IsInherit():
		a, _ := r.Auth.Authenticator()
		requirement, err := g.securityRequirement(a)
		if err != nil {
			return nil, err
		}
		op.Security = requirement
	}

	return op, nil
}

// explodeParameters turns an object fragment into one parameter entry per
// top-level field, annotated with its location and required flag. Fields
// are emitted in sorted name order for stable output.
func explodeParameters(frag *JSONSchema, in string) ([]*Parameter, error) {
	if frag.Type != TypeObject {
		return nil, ErrParameterObject
	}

	required := make(map[string]bool, len(frag.Required))
	for _, name := range frag.Required {
		required[name] = true
	}

	names := make([]string, 0, len(frag.Properties))
	for name := range frag.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	parameters := make([]*Parameter, 0, len(names))
	for _, name := range names {
		prop := frag.Properties[name]
		parameters = append(parameters, &Parameter{
			Name:     name,
			In:       in,
			Required: required[name],
			Type:     prop.Type,
			Format:   prop.Format,
			Items:    prop.Items,
			Enum:     prop.Enum,
		})
	}

	return parameters, nil
}

// setOperation assigns an operation to the method field on the path item.
func setOperation(item *PathItem, method string, op *Operation) error {
	switch method {
	case "GET":
		item.Get = op
	case "PUT":
		item.Put = op
	case "POST":
		item.Post = op
	case "DELETE":
		item.Delete = op
	case "OPTIONS":
		item.Options = op
	case "HEAD":
		item.Head = op
	case "PATCH":
		item.Patch = op
	case "TRACE":
		item.Trace = op
	default:
		return fmt.Errorf("swagger: unsupported method %q", method)
	}
	return nil
}

func sortedCodes(marshal map[int]schema.Schema) []int {
	codes := make([]int, 0, len(marshal))
	for code := range marshal {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

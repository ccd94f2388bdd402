package swagger

// Document is the root of a Swagger v2.0 document.
//
// See: https://swagger.io/specification/v2/#swagger-object
type Document struct {
	Swagger             string                     `json:"swagger"`
	Info                Info                       `json:"info"`
	Host                string                     `json:"host,omitempty"`
	BasePath            string                     `json:"basePath,omitempty"`
	Schemes             []string                   `json:"schemes,omitempty"`
	Consumes            []string                   `json:"consumes,omitempty"`
	Produces            []string                   `json:"produces,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme `json:"securityDefinitions"`
	Security            *SecurityRequirement       `json:"security,omitempty"`
	Paths               map[string]*PathItem       `json:"paths"`
	Definitions         map[string]*JSONSchema     `json:"definitions"`
}

// Info provides metadata about the API.
//
// See: https://swagger.io/specification/v2/#info-object
type Info struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// PathItem describes the operations available on a single path. Parameters
// shared by every operation on the path (the path placeholders) live here.
//
// See: https://swagger.io/specification/v2/#path-item-object
type PathItem struct {
	Parameters []*Parameter `json:"parameters,omitempty"`
	Get        *Operation   `json:"get,omitempty"`
	Put        *Operation   `json:"put,omitempty"`
	Post       *Operation   `json:"post,omitempty"`
	Delete     *Operation   `json:"delete,omitempty"`
	Options    *Operation   `json:"options,omitempty"`
	Head       *Operation   `json:"head,omitempty"`
	Patch      *Operation   `json:"patch,omitempty"`
	Trace      *Operation   `json:"trace,omitempty"`
}

// Operation describes a single API operation on a path. Security is a
// pointer so that three states survive marshaling: nil omits the key
// (inherit the document default), an empty map emits {} (explicitly
// unauthenticated), and a populated map names the route's authenticator.
//
// See: https://swagger.io/specification/v2/#operation-object
type Operation struct {
	OperationID string               `json:"operationId"`
	Description string               `json:"description,omitempty"`
	Parameters  []*Parameter         `json:"parameters,omitempty"`
	Responses   map[string]*Response `json:"responses"`
	Security    *SecurityRequirement `json:"security,omitempty"`
}

// Parameter describes a single operation parameter. Non-body parameters
// carry their type inline; body parameters reference a definition through
// Schema.
//
// See: https://swagger.io/specification/v2/#parameter-object
type Parameter struct {
	Name        string      `json:"name"`
	In          string      `json:"in"`
	Required    bool        `json:"required"`
	Description string      `json:"description,omitempty"`
	Type        string      `json:"type,omitempty"`
	Format      string      `json:"format,omitempty"`
	Items       *JSONSchema `json:"items,omitempty"`
	Enum        []any       `json:"enum,omitempty"`
	Schema      *JSONSchema `json:"schema,omitempty"`
}

// Response describes a single response from an API operation.
//
// See: https://swagger.io/specification/v2/#response-object
type Response struct {
	Description string      `json:"description,omitempty"`
	Schema      *JSONSchema `json:"schema,omitempty"`
}

// SecurityScheme describes how credentials are presented, e.g. an API key
// in a named header.
//
// See: https://swagger.io/specification/v2/#security-scheme-object
type SecurityScheme struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Name        string `json:"name,omitempty"`
	In          string `json:"in,omitempty"`
}

// SecurityRequirement maps security definition keys to their required
// scopes. API key schemes use an empty scope list.
type SecurityRequirement map[string][]string

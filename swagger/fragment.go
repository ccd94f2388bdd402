package swagger

// JSON Schema type names used in fragments.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Parameter locations.
const (
	InQuery  = "query"
	InHeader = "header"
	InPath   = "path"
	InBody   = "body"
)

// JSONSchema is the intermediate JSON-Schema fragment: a tree of object,
// array, and primitive nodes produced by schema conversion and consumed by
// flattening. After flattening, nested named objects are replaced by Ref
// nodes pointing into the definitions table.
type JSONSchema struct {
	Ref         string                 `json:"$ref,omitempty"`
	Type        string                 `json:"type,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Format      string                 `json:"format,omitempty"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
}

// Clone returns a deep copy of the fragment. Subtrees reached through more
// than one pointer stay shared in the copy, and cyclic references are
// preserved rather than expanded.
func (s *JSONSchema) Clone() *JSONSchema {
	return s.clone(make(map[*JSONSchema]*JSONSchema))
}

func (s *JSONSchema) clone(memo map[*JSONSchema]*JSONSchema) *JSONSchema {
	if s == nil {
		return nil
	}
	if c, ok := memo[s]; ok {
		return c
	}

	c := &JSONSchema{
		Ref:         s.Ref,
		Type:        s.Type,
		Title:       s.Title,
		Format:      s.Format,
		Description: s.Description,
	}
	memo[s] = c

	if s.Properties != nil {
		c.Properties = make(map[string]*JSONSchema, len(s.Properties))
		for name, prop := range s.Properties {
			c.Properties[name] = prop.clone(memo)
		}
	}
	if s.Required != nil {
		c.Required = append([]string(nil), s.Required...)
	}
	c.Items = s.Items.clone(memo)
	if s.Enum != nil {
		c.Enum = append([]any(nil), s.Enum...)
	}

	return c
}

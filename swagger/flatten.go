package swagger

// refTo builds a reference fragment pointing into the definitions table.
func refTo(key string) *JSONSchema {
	return &JSONSchema{Ref: "#/definitions/" + key}
}

// Flatten recursively extracts every nested named object in the fragment
// into a flat mapping of title to object fragment, replacing each nested
// occurrence with a reference.
//
// An object root is itself registered and the returned fragment is a bare
// reference to its title. An array root keeps its wrappers inline; only
// object items are extracted. A primitive root passes through unchanged
// with an empty definitions map.
//
// The input fragment is deep-copied before any rewrite and is never
// mutated. Distinct objects sharing a title silently overwrite one another
// in the returned map; unique titles are the caller's naming contract.
// A reference cycle through the nested object graph fails with
// *CyclicSchemaError.
func Flatten(frag *JSONSchema) (*JSONSchema, map[string]*JSONSchema, error) {
	frag = frag.Clone()
	defs := make(map[string]*JSONSchema)
	onPath := make(map[*JSONSchema]bool)

	switch frag.Type {
	case TypeObject:
		key, err := flattenObject(frag, defs, onPath)
		if err != nil {
			return nil, nil, err
		}
		return refTo(key), defs, nil
	case TypeArray:
		if err := flattenArray(frag, defs, onPath); err != nil {
			return nil, nil, err
		}
		return frag, defs, nil
	case "":
		return nil, nil, ErrUntypedFragment
	default:
		return frag, defs, nil
	}
}

// flattenObject flattens nested fields bottom-up, registers the object
// under its title, and returns the title.
func flattenObject(frag *JSONSchema, defs map[string]*JSONSchema, onPath map[*JSONSchema]bool) (string, error) {
	if frag.Title == "" {
		return "", ErrMissingTitle
	}
	if onPath[frag] {
		return "", &CyclicSchemaError{Title: frag.Title}
	}
	onPath[frag] = true
	defer delete(onPath, frag)

	for name, prop := range frag.Properties {
		switch prop.Type {
		case TypeObject:
			key, err := flattenObject(prop, defs, onPath)
			if err != nil {
				return "", err
			}
			frag.Properties[name] = refTo(key)
		case TypeArray:
			if err := flattenArray(prop, defs, onPath); err != nil {
				return "", err
			}
		}
	}

	defs[frag.Title] = frag
	return frag.Title, nil
}

// flattenArray rewrites object items to references and recurses through
// nested arrays. The array wrapper itself never becomes a definition.
func flattenArray(frag *JSONSchema, defs map[string]*JSONSchema, onPath map[*JSONSchema]bool) error {
	if frag.Items == nil {
		return ErrMissingItems
	}
	if onPath[frag] {
		return &CyclicSchemaError{Title: frag.Title}
	}
	onPath[frag] = true
	defer delete(onPath, frag)

	switch frag.Items.Type {
	case TypeObject:
		key, err := flattenObject(frag.Items, defs, onPath)
		if err != nil {
			return err
		}
		frag.Items = refTo(key)
	case TypeArray:
		return flattenArray(frag.Items, defs, onPath)
	}
	return nil
}

package swagger

import (
	"errors"
	"fmt"

	"github.com/h3kker/rebar/framer"
	"github.com/h3kker/rebar/schema"
)

var (
	// ErrUntypedFragment is returned when a fragment handed to the
	// flattener carries neither a type nor a reference.
	ErrUntypedFragment = errors.New("swagger: fragment has no type")

	// ErrMissingTitle is returned when an object fragment reaches the
	// flattener without a title to key its definition by.
	ErrMissingTitle = errors.New("swagger: object fragment has no title")

	// ErrMissingItems is returned when an array fragment has no items.
	ErrMissingItems = errors.New("swagger: array fragment has no items")

	// ErrParameterObject is returned when a schema converted for query or
	// header parameters does not produce an object fragment.
	ErrParameterObject = errors.New("swagger: parameter conversion requires an object fragment")
)

// UnsupportedSchemaError reports a schema whose concrete type has no
// registered converter and no structural default. It indicates incomplete
// generator setup; register a converter for the type.
type UnsupportedSchemaError struct {
	Schema schema.Schema
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("swagger: no converter registered for schema type %T", e.Schema)
}

// UnsupportedFieldTypeError reports a field type name with no registered
// field-type fragment.
type UnsupportedFieldTypeError struct {
	Name string
}

func (e *UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("swagger: no fragment registered for field type %q", e.Name)
}

// UnsupportedAuthenticatorError reports an authenticator whose concrete
// type has no registered converter.
type UnsupportedAuthenticatorError struct {
	Authenticator framer.Authenticator
}

func (e *UnsupportedAuthenticatorError) Error() string {
	return fmt.Sprintf("swagger: no converter registered for authenticator type %T", e.Authenticator)
}

// CyclicSchemaError reports a reference cycle in a fragment's nested
// object graph found while flattening.
type CyclicSchemaError struct {
	Title string
}

func (e *CyclicSchemaError) Error() string {
	return fmt.Sprintf("swagger: cyclic reference through schema %q", e.Title)
}

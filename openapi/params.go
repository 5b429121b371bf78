package openapi

import (
	"reflect"

	"github.com/aemitos/tornopen/router"
)

// pathParameter builds the Parameter object for a declared path parameter.
// Path parameters are always required.
func pathParameter(p router.Param) *Parameter {
	return parameter(p, "path", true)
}

// queryParameter builds the Parameter object for a declared query
// parameter. The parameter is required unless its annotation is Optional.
func queryParameter(p router.Param) *Parameter {
	return parameter(p, "query", !isOptional(p.Type))
}

func parameter(p router.Param, in string, required bool) *Parameter {
	return &Parameter{
		Name:     p.Name,
		In:       in,
		Required: required,
		Schema:   paramSchema(p),
	}
}

// paramSchema assembles the schema for a parameter: inferred type, enum
// values, default, and array items. A schema with nothing to say is dropped
// entirely rather than emitted empty.
func paramSchema(p router.Param) *Schema {
	s := &Schema{
		Type:    inferType(p.Type),
		Enum:    enumValues(p.Type),
		Default: defaultValue(p),
		Items:   itemsSchema(p.Type),
	}
	if s.Type == "" && s.Enum == nil && s.Default == nil && s.Items == nil {
		return nil
	}
	return s
}

// inferType maps an annotation to its OpenAPI type. Optional wrappers are
// transparent, enumerations take the type of their first value, and an
// unrecognized annotation yields no type at all: documentation may be
// incomplete but generation never aborts over it.
func inferType(t router.Type) string {
	switch v := t.(type) {
	case router.Primitive:
		switch v {
		case router.String, router.Integer, router.Number:
			return string(v)
		}
	case router.Optional:
		return inferType(v.Elem)
	case router.Enum:
		if len(v.Values) > 0 {
			return typeOfValue(v.Values[0])
		}
	case router.List:
		return "array"
	}
	return ""
}

// typeOfValue infers the OpenAPI type of an enum value from its underlying
// reflect kind, so typed constants resolve to their base type.
func typeOfValue(v any) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	}
	return ""
}

// enumValues lists the underlying values of an Enum annotation in
// declaration order. Typed constants are unwrapped to plain values.
func enumValues(t router.Type) []any {
	e, ok := t.(router.Enum)
	if !ok || len(e.Values) == 0 {
		return nil
	}
	values := make([]any, len(e.Values))
	for i, v := range e.Values {
		values[i] = underlyingValue(v)
	}
	return values
}

// defaultValue returns the parameter's declared default. The default of an
// enum-annotated parameter is unwrapped to its underlying value.
func defaultValue(p router.Param) any {
	if p.Default == nil {
		return nil
	}
	if _, ok := p.Type.(router.Enum); ok {
		return underlyingValue(p.Default)
	}
	return p.Default
}

// underlyingValue converts a value of a named type to its underlying
// primitive so enum members marshal as plain values.
func underlyingValue(v any) any {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

// itemsSchema computes the array element schema. It applies only when the
// annotation is an array; the element unwraps through an Optional[List]
// double layer when present. Elements of unknown type produce no items
// schema at all.
func itemsSchema(t router.Type) *Schema {
	if inferType(t) != "array" {
		return nil
	}
	et := inferType(elementType(t))
	if et == "" {
		return nil
	}
	return &Schema{Type: et}
}

// elementType unwraps the annotation to its list element: Optional first,
// then List.
func elementType(t router.Type) router.Type {
	if opt, ok := t.(router.Optional); ok {
		t = opt.Elem
	}
	if l, ok := t.(router.List); ok {
		return l.Elem
	}
	return nil
}

// isOptional reports whether the annotation is wrapped in Optional.
func isOptional(t router.Type) bool {
	_, ok := t.(router.Optional)
	return ok
}

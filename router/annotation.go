package router

// Type describes the annotation of a declared parameter. It is a closed set
// of descriptors: primitives, lists, optional wrappers, and enumerations.
// Descriptors carry no behavior of their own; the OpenAPI generator
// interprets the tree.
type Type interface {
	isType()
}

// Primitive is a scalar annotation.
type Primitive string

// Scalar annotations.
const (
	String  Primitive = "string"
	Integer Primitive = "integer"
	Number  Primitive = "number"
)

func (Primitive) isType() {}

// List annotates an array-valued parameter. Elem may be nil when the
// element type is unspecified.
type List struct {
	Elem Type
}

func (List) isType() {}

// Optional annotates a parameter that may be omitted. Wrapping affects only
// whether the parameter is required, never its type.
type Optional struct {
	Elem Type
}

func (Optional) isType() {}

// Enum annotates a parameter restricted to a fixed set of values, listed in
// declaration order. Values are usually typed constants; the generator
// infers the schema type from the first value's underlying kind and assumes
// the set is homogeneous.
type Enum struct {
	Values []any
}

func (Enum) isType() {}

// EnumOf builds an Enum annotation from its values.
func EnumOf(values ...any) Enum {
	return Enum{Values: values}
}

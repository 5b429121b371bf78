package openapi

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Describer supplies documentation text for a model type. The text becomes
// the schema description and, on response models, the success response
// description.
type Describer interface {
	OpenAPIDescription() string
}

// Exampler supplies an example value for a model type, emitted as the
// schema's example field.
//
//	func (u User) OpenAPIExample() any {
//	    return User{ID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), Name: "Alice"}
//	}
type Exampler interface {
	OpenAPIExample() any
}

// schemaRef renders the fixed reference template for a named model.
func schemaRef(name string) string {
	return "#/components/schemas/" + name
}

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// modelRenderer renders one model type into a JSON Schema, collecting the
// named struct types it references into a definitions map that travels
// with the rendered root schema.
type modelRenderer struct {
	defs    map[string]*Schema
	visited map[reflect.Type]bool
}

// ModelSchema renders the JSON Schema for a model value's type. The root
// schema is inlined; named struct types referenced by its fields are
// rendered once into the schema's Defs and referred to via
// #/components/schemas/{model}. A nil model has no schema.
func ModelSchema(model any) *Schema {
	if model == nil {
		return nil
	}
	r := &modelRenderer{
		defs:    make(map[string]*Schema),
		visited: make(map[reflect.Type]bool),
	}
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	root := r.render(t, true)
	if root == nil {
		return nil
	}
	if len(r.defs) > 0 {
		root.Defs = r.defs
	}
	return root
}

// render produces a schema for the given type. Named struct types become a
// $ref backed by a definitions entry, except the root model which renders
// inline. Pointers are transparent: optionality is a property of the
// containing struct field, not of the schema.
func (r *modelRenderer) render(t reflect.Type, inline bool) *Schema {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t {
	case timeType:
		return &Schema{Type: "string", Format: "date-time"}
	case uuidType:
		return &Schema{Type: "string", Format: "uuid"}
	}

	if t.Kind() == reflect.Struct {
		if inline || t.Name() == "" {
			return r.structSchema(t)
		}
		name := t.Name()
		if !r.visited[t] {
			r.visited[t] = true
			r.defs[name] = r.structSchema(t)
		}
		return &Schema{Ref: schemaRef(name)}
	}

	switch t.Kind() {
	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return &Schema{Type: "string", Format: "byte"}
		}
		return &Schema{Type: "array", Items: r.render(t.Elem(), false)}

	case reflect.Array:
		return &Schema{Type: "array", Items: r.render(t.Elem(), false)}

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return &Schema{Type: "object"}
		}
		return &Schema{Type: "object", AdditionalProperties: r.render(t.Elem(), false)}
	}

	// Interfaces and other unrepresentable kinds have no schema; the field
	// is documented as absent rather than as an empty object.
	return nil
}

// structSchema builds an object schema from struct fields.
func (r *modelRenderer) structSchema(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}
	if t.Name() != "" {
		schema.Title = t.Name()
		annotate(schema, t)
	}

	r.collectFields(t, schema, false)

	if len(schema.Properties) == 0 {
		schema.Properties = nil
	}
	return schema
}

// collectFields gathers struct fields into the schema. When allOptional is
// true every field is treated as optional; this applies to fields inlined
// from a pointer-embedded struct, which may be nil and omit them all.
func (r *modelRenderer) collectFields(t reflect.Type, schema *Schema, allOptional bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// Embedded structs inline unless the json tag names them, matching
		// encoding/json behavior.
		if field.Anonymous {
			if name, _ := parseJSONTag(field.Tag.Get("json")); name == "" {
				ft := field.Type
				ptr := ft.Kind() == reflect.Pointer
				if ptr {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					r.collectFields(ft, schema, allOptional || ptr)
					continue
				}
			}
		}

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, omitempty := parseJSONTag(tag)
		if name == "" {
			name = field.Name
		}

		fs := r.render(field.Type, false)
		if fs == nil {
			continue
		}
		applyFieldTag(fs, field.Tag.Get("openapi"))
		schema.Properties[name] = fs

		if !omitempty && !allOptional && field.Type.Kind() != reflect.Pointer {
			schema.Required = append(schema.Required, name)
		}
	}
}

func parseJSONTag(tag string) (name string, omitempty bool) {
	if tag == "" {
		return "", false
	}
	name, opts, _ := strings.Cut(tag, ",")
	return name, strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero")
}

// annotate applies the type's Describer and Exampler implementations, if
// any, to its schema.
func annotate(schema *Schema, t reflect.Type) {
	v := reflect.New(t).Interface()
	if d, ok := v.(Describer); ok {
		schema.Description = strings.TrimSpace(d.OpenAPIDescription())
	}
	if e, ok := v.(Exampler); ok {
		schema.Example = e.OpenAPIExample()
	}
}

// modelDescription returns the trimmed Describer text of a model value, or
// "" when the model declares none.
func modelDescription(model any) string {
	if model == nil {
		return ""
	}
	if d, ok := model.(Describer); ok {
		return strings.TrimSpace(d.OpenAPIDescription())
	}
	t := reflect.TypeOf(model)
	if t.Kind() != reflect.Pointer {
		if d, ok := reflect.New(t).Interface().(Describer); ok {
			return strings.TrimSpace(d.OpenAPIDescription())
		}
	}
	return ""
}

// applyFieldTag parses the `openapi` struct tag and applies the supported
// constraint keys to the field schema.
func applyFieldTag(schema *Schema, tag string) {
	if tag == "" {
		return
	}

	for _, part := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if hasValue {
			value = strings.TrimSpace(value)
		}

		switch key {
		case "description":
			schema.Description = value
		case "format":
			schema.Format = value
		case "example":
			schema.Example = parseTagValue(schema, value)
		case "enum":
			values := strings.Split(value, "|")
			schema.Enum = make([]any, len(values))
			for i, v := range values {
				schema.Enum[i] = v
			}
		case "minimum":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				schema.Minimum = &v
			}
		case "maximum":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				schema.Maximum = &v
			}
		case "minLength":
			if v, err := strconv.Atoi(value); err == nil {
				schema.MinLength = &v
			}
		case "maxLength":
			if v, err := strconv.Atoi(value); err == nil {
				schema.MaxLength = &v
			}
		case "pattern":
			schema.Pattern = value
		}
	}
}

// parseTagValue converts a string tag value to the Go type matching the
// schema's declared type.
func parseTagValue(schema *Schema, value string) any {
	switch schema.Type {
	case "integer":
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	case "number":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case "boolean":
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}

// Package openapi generates OpenAPI documents from annotated route tables.
//
// The generator walks a router.Table, translates each regex route pattern
// into an OpenAPI path template, and assembles one operation per HTTP verb
// the route's handler implements. Parameter schemas are inferred from the
// handler's declared annotations; request body and response schemas are
// rendered from Go model types via reflection and deduplicated into
// #/components/schemas through a registry.
//
//	spec := openapi.NewSpec("Petstore", "1.0.0", "3.0.3")
//	doc, err := spec.Build(table)
//	if err != nil {
//	    ...
//	}
//	out, err := doc.YAML()
//
// Generation is a synchronous, one-shot, in-memory transform: no I/O, no
// shared state beyond the per-build registry, and the same table always
// produces the same document. Route patterns that cannot be translated
// (nested groups, or unnamed capture groups mixed with named ones) abort
// the build with a descriptive error.
//
// Model types may implement Describer to supply documentation text and
// Exampler to supply an example value:
//
//	func (User) OpenAPIDescription() string { return "A registered user." }
//	func (User) OpenAPIExample() any        { return User{Name: "Alice"} }
//
// Struct fields honor encoding/json tags for naming and optionality, and an
// "openapi" tag for schema constraints:
//
//	type User struct {
//	    Name string `json:"name" openapi:"description=Full name,minLength=1"`
//	    Role string `json:"role,omitempty" openapi:"enum=admin|member"`
//	}
package openapi

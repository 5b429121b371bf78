package router

// Param declares a path or query parameter: its name, type annotation, and
// default value. A nil Default means the parameter has no default.
type Param struct {
	Name    string
	Type    Type
	Default any
}

// BodyParam declares the single JSON request body parameter of a verb. The
// Model value's type is rendered into the request body schema.
type BodyParam struct {
	Name  string
	Model any
}

// Method holds the metadata a handler declares for one HTTP verb. The
// metadata is fixed at registration time and read-only during generation.
type Method struct {
	QueryParams []Param

	// Body is the verb's JSON request body parameter, if any.
	Body *BodyParam

	// ResponseModel is a value whose type describes the success response
	// payload. Nil means the response has no body schema.
	ResponseModel any

	// Description is free-text documentation for the verb, emitted as the
	// operation description with surrounding whitespace trimmed.
	Description string

	tags    []string
	summary string
}

// Decorator attaches static metadata to a handler method. Decorators do not
// alter the method's own declarations.
type Decorator func(*Method)

// Tags returns a decorator that appends OpenAPI tags to a method.
func Tags(names ...string) Decorator {
	return func(m *Method) {
		m.tags = append(m.tags, names...)
	}
}

// Summary returns a decorator that sets a method's OpenAPI summary.
func Summary(text string) Decorator {
	return func(m *Method) {
		m.summary = text
	}
}

// Decorate applies decorators to the method and returns it, so a Method
// literal can be decorated in place during registration.
func (m *Method) Decorate(ds ...Decorator) *Method {
	for _, d := range ds {
		d(m)
	}
	return m
}

// Tags returns the tags attached by decorators, in application order.
func (m *Method) Tags() []string { return m.tags }

// Summary returns the summary attached by a decorator, if any.
func (m *Method) Summary() string { return m.summary }

// Handler associates per-verb metadata with a route. A nil verb field means
// the verb is not implemented and yields no operation. PathParams apply to
// every verb on the route.
type Handler struct {
	PathParams []Param

	Get     *Method
	Head    *Method
	Post    *Method
	Delete  *Method
	Patch   *Method
	Put     *Method
	Options *Method
}

// verbs is the canonical ordering of supported HTTP verbs.
var verbs = []string{"get", "head", "post", "delete", "patch", "put", "options"}

// Method returns the metadata for the named verb (lower case), or nil when
// the verb is unknown or not implemented.
func (h *Handler) Method(verb string) *Method {
	switch verb {
	case "get":
		return h.Get
	case "head":
		return h.Head
	case "post":
		return h.Post
	case "delete":
		return h.Delete
	case "patch":
		return h.Patch
	case "put":
		return h.Put
	case "options":
		return h.Options
	}
	return nil
}

// Verbs returns the implemented verbs in canonical order.
func (h *Handler) Verbs() []string {
	var out []string
	for _, v := range verbs {
		if h.Method(v) != nil {
			out = append(out, v)
		}
	}
	return out
}

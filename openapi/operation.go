package openapi

import (
	"strings"

	"github.com/aemitos/tornopen/router"
)

// defaultResponseDescription is emitted when a response model declares no
// documentation of its own.
const defaultResponseDescription = "Declare a response model implementing openapi.Describer to overwrite this default description.\n\n" +
	"Example:\n\n" +
	"\ttype MyResponse struct {\n" +
	"\t\tSpam string `json:\"spam\"`\n" +
	"\t\tHam  int    `json:\"ham\"`\n" +
	"\t}\n\n" +
	"\tfunc (MyResponse) OpenAPIDescription() string {\n" +
	"\t\treturn \"Successfully retrieved my response model\"\n" +
	"\t}"

// buildOperations assembles one Operation per implemented verb on the
// handler, registering referenced response schemas into reg.
func buildOperations(h *router.Handler, reg *Registry) map[string]*Operation {
	ops := make(map[string]*Operation)
	for _, verb := range h.Verbs() {
		ops[verb] = buildOperation(h.Method(verb), reg)
	}
	return ops
}

// buildOperation translates one verb's metadata into an Operation.
func buildOperation(m *router.Method, reg *Registry) *Operation {
	op := &Operation{
		Tags:        m.Tags(),
		Summary:     m.Summary(),
		Description: strings.TrimSpace(m.Description),
		RequestBody: requestBody(m),
		Responses:   responses(m, reg),
	}
	for _, p := range m.QueryParams {
		op.Parameters = append(op.Parameters, queryParameter(p))
	}
	return op
}

// requestBody renders the operation's JSON body schema when the verb
// declares a body parameter. The rendered schema keeps its definitions
// inline; only response schemas promote them into the registry.
func requestBody(m *router.Method) *RequestBody {
	if m.Body == nil {
		return nil
	}
	return &RequestBody{
		Content: map[string]*MediaType{
			"application/json": {Schema: ModelSchema(m.Body.Model)},
		},
	}
}

// responses builds the operation's response map: a single "200" entry.
func responses(m *router.Method, reg *Registry) map[string]*Response {
	return map[string]*Response{
		"200": successResponse(m.ResponseModel, reg),
	}
}

// successResponse describes the "200" response. The description comes from
// the response model's Describer text when present, else the fixed default.
// The rendered schema's definitions are promoted into the registry and
// stripped from the inline schema, leaving the $ref indirection intact. A
// verb without a response model gets a description and no content.
func successResponse(model any, reg *Registry) *Response {
	resp := &Response{Description: defaultResponseDescription}
	if doc := modelDescription(model); doc != "" {
		resp.Description = doc
	}

	schema := ModelSchema(model)
	if schema == nil {
		return resp
	}

	for id, def := range schema.Defs {
		reg.Schema(id, def)
	}
	schema.Defs = nil

	resp.Content = map[string]*MediaType{
		"application/json": {Schema: schema},
	}
	return resp
}

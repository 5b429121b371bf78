package openapi

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Document is the root of a generated OpenAPI document.
//
// See: https://spec.openapis.org/oas/v3.0.3#openapi-object
type Document struct {
	OpenAPI    string               `json:"openapi" yaml:"openapi"`
	Info       Info                 `json:"info" yaml:"info"`
	Paths      map[string]*PathItem `json:"paths,omitempty" yaml:"paths,omitempty"`
	Components *Components          `json:"components,omitempty" yaml:"components,omitempty"`
	Tags       []Tag                `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// Info carries the API title and version supplied by the caller.
//
// See: https://spec.openapis.org/oas/v3.0.3#info-object
type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

// Tag names a group of operations. Tags used by operations are collected
// into the document-level tag list.
//
// See: https://spec.openapis.org/oas/v3.0.3#tag-object
type Tag struct {
	Name string `json:"name" yaml:"name"`
}

// PathItem describes the operations available on a single path. Parameters
// declared here apply to every operation under the path.
//
// See: https://spec.openapis.org/oas/v3.0.3#path-item-object
type PathItem struct {
	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Get        *Operation   `json:"get,omitempty" yaml:"get,omitempty"`
	Head       *Operation   `json:"head,omitempty" yaml:"head,omitempty"`
	Post       *Operation   `json:"post,omitempty" yaml:"post,omitempty"`
	Delete     *Operation   `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch      *Operation   `json:"patch,omitempty" yaml:"patch,omitempty"`
	Put        *Operation   `json:"put,omitempty" yaml:"put,omitempty"`
	Options    *Operation   `json:"options,omitempty" yaml:"options,omitempty"`
}

// Operation describes one HTTP verb on one path. Operations are built once
// per (route, verb) pair and never mutated afterwards.
//
// See: https://spec.openapis.org/oas/v3.0.3#operation-object
type Operation struct {
	Tags        []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  []*Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses,omitempty" yaml:"responses,omitempty"`
}

// Parameter describes a single path or query parameter. Required is always
// emitted: "required": false is meaningful for query parameters.
//
// See: https://spec.openapis.org/oas/v3.0.3#parameter-object
type Parameter struct {
	Name     string  `json:"name" yaml:"name"`
	In       string  `json:"in" yaml:"in"`
	Required bool    `json:"required" yaml:"required"`
	Schema   *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody describes the JSON request body of an operation.
//
// See: https://spec.openapis.org/oas/v3.0.3#request-body-object
type RequestBody struct {
	Content map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType holds the schema for one content type.
//
// See: https://spec.openapis.org/oas/v3.0.3#media-type-object
type MediaType struct {
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Response describes a single response. The description field is required
// by the specification.
//
// See: https://spec.openapis.org/oas/v3.0.3#response-object
type Response struct {
	Description string                `json:"description" yaml:"description"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// Components holds the reusable schemas referenced via $ref.
//
// See: https://spec.openapis.org/oas/v3.0.3#components-object
type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

// Schema is a JSON-Schema-like structural description of a value. Optional
// fields are omitted from output when empty, so generated documents never
// carry null, empty-list, or empty-map values.
//
// See: https://spec.openapis.org/oas/v3.0.3#schema-object
type Schema struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	// Defs holds schemas for named model types referenced from this one.
	// Response rendering promotes the entries into the component registry
	// and strips the map; the $ref indirection stays behind.
	Defs map[string]*Schema `json:"definitions,omitempty" yaml:"definitions,omitempty"`

	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`
	Example     any    `json:"example,omitempty" yaml:"example,omitempty"`

	Enum  []any   `json:"enum,omitempty" yaml:"enum,omitempty"`
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	Minimum   *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

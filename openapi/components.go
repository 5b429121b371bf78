package openapi

import "reflect"

// Registry is a deduplicating store of named component schemas. Callers
// must keep identifiers globally unique per distinct shape: registering a
// structurally identical schema under an existing identifier is a no-op,
// while a different schema under the same identifier overwrites the
// previous entry (last writer wins).
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Schema registers a schema under the given identifier.
func (r *Registry) Schema(id string, schema *Schema) {
	if existing, ok := r.schemas[id]; ok && reflect.DeepEqual(existing, schema) {
		return
	}
	r.schemas[id] = schema
}

// Schemas returns the registered schemas keyed by identifier.
func (r *Registry) Schemas() map[string]*Schema {
	return r.schemas
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.schemas)
}

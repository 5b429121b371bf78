package openapi

import (
	"sort"

	"github.com/aemitos/tornopen/router"
)

// Spec assembles OpenAPI documents from a route table. Title, version, and
// the OpenAPI version string are supplied by the caller.
type Spec struct {
	Title          string
	Version        string
	OpenAPIVersion string
}

// NewSpec creates a spec with the given API title, API version, and OpenAPI
// version (e.g. "3.0.3").
func NewSpec(title, version, openapiVersion string) *Spec {
	return &Spec{
		Title:          title,
		Version:        version,
		OpenAPIVersion: openapiVersion,
	}
}

// Build walks the route table and assembles a complete Document. Each call
// runs with a fresh component registry, so repeated builds over the same
// table produce identical documents. Translation failures surface
// wholesale: the first bad route aborts the build.
func (s *Spec) Build(table *router.Table) (*Document, error) {
	reg := NewRegistry()
	doc := &Document{
		OpenAPI: s.OpenAPIVersion,
		Info:    Info{Title: s.Title, Version: s.Version},
		Paths:   make(map[string]*PathItem),
	}

	err := table.Walk(func(rt *router.Route) error {
		h := rt.Handler()
		if h == nil {
			return nil
		}

		path, err := translatePath(rt)
		if err != nil {
			return err
		}

		item, ok := doc.Paths[path]
		if !ok {
			item = &PathItem{}
			for _, p := range h.PathParams {
				item.Parameters = append(item.Parameters, pathParameter(p))
			}
			doc.Paths[path] = item
		}

		for verb, op := range buildOperations(h, reg) {
			assignOperation(item, verb, op)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if reg.Len() > 0 {
		doc.Components = &Components{Schemas: reg.Schemas()}
	}
	doc.Tags = collectTags(doc.Paths)

	return doc, nil
}

// assignOperation assigns an operation to the matching verb field on the
// path item.
func assignOperation(item *PathItem, verb string, op *Operation) {
	switch verb {
	case "get":
		item.Get = op
	case "head":
		item.Head = op
	case "post":
		item.Post = op
	case "delete":
		item.Delete = op
	case "patch":
		item.Patch = op
	case "put":
		item.Put = op
	case "options":
		item.Options = op
	}
}

// collectTags aggregates the tags used by operations into the
// document-level tag list, deduplicated and sorted by name.
func collectTags(paths map[string]*PathItem) []Tag {
	seen := make(map[string]bool)
	var tags []Tag

	for _, item := range paths {
		for _, op := range []*Operation{
			item.Get, item.Head, item.Post, item.Delete,
			item.Patch, item.Put, item.Options,
		} {
			if op == nil {
				continue
			}
			for _, name := range op.Tags {
				if seen[name] {
					continue
				}
				seen[name] = true
				tags = append(tags, Tag{Name: name})
			}
		}
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags
}

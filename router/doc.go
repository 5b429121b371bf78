// Package router provides the route table and handler metadata model the
// OpenAPI generator consumes.
//
// A Table associates regular-expression URL patterns with handlers. Each
// Handler declares, per HTTP verb, its query parameters, an optional JSON
// body parameter, an optional response model, and free-text documentation.
// Path parameters are shared by every verb on the route.
//
//	table := router.NewTable()
//	table.Handle(`/users/(?P<user_id>[^/]+)`, &router.Handler{
//	    PathParams: []router.Param{{Name: "user_id", Type: router.String}},
//	    Get: (&router.Method{
//	        QueryParams: []router.Param{
//	            {Name: "verbose", Type: router.Optional{Elem: router.Integer}},
//	        },
//	        ResponseModel: User{},
//	        Description:   "Fetch a single user.",
//	    }).Decorate(router.Tags("users"), router.Summary("Get user")),
//	})
//
// Parameter annotations are explicit Type descriptors (Primitive, List,
// Optional, Enum) rather than reflected method signatures, so the generator
// stays a pure function over the declared metadata.
//
// The table performs no request matching or dispatch; it exists only to be
// walked during document generation.
package router

package openapi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aemitos/tornopen/router"
)

// translatePath converts a route into an OpenAPI path template. Patterns
// without capture groups pass through unchanged; otherwise each %s slot in
// the route's derived path is substituted with a {name} placeholder, named
// groups taken in capture-index order. Trailing slash and wildcard
// characters are stripped from the result.
//
// A path with fewer slots than the pattern has named groups (unnamed groups
// mixed in, or an underivable template) is a registration mistake and fails
// the build rather than truncating silently.
func translatePath(rt *router.Route) (string, error) {
	re, err := rt.Regexp()
	if err != nil {
		return "", err
	}

	path, err := rt.PathTemplate()
	if err != nil {
		return "", err
	}

	if re.NumSubexp() > 0 {
		names := namedGroups(re)
		if slots := strings.Count(path, "%s"); slots != len(names) {
			return "", fmt.Errorf("openapi: pattern %q has %d named groups but path template %q has %d slots",
				re.String(), len(names), path, slots)
		}
		for _, name := range names {
			path = strings.Replace(path, "%s", "{"+name+"}", 1)
		}
	}

	return strings.TrimRight(path, "/*"), nil
}

// namedGroups returns the pattern's named capture groups ordered by capture
// index, the order they appear left to right in the pattern regardless of
// name. SubexpNames is indexed by capture group, so iteration order is
// capture order.
func namedGroups(re *regexp.Regexp) []string {
	var names []string
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

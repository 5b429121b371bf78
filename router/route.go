package router

import (
	"fmt"
	"regexp"
	"strings"
)

// Route associates a URL pattern with a handler. The pattern is a regular
// expression whose named capture groups become path parameters. Routes are
// immutable once registered.
type Route struct {
	pattern *regexp.Regexp
	path    string // printf-style template derived from the pattern
	handler *Handler
	err     error
}

// newRoute compiles the pattern and derives its path template. A trailing
// "$" anchor is appended when missing so patterns match whole paths.
// Compilation failures are deferred to the accessors, keeping registration
// chainable.
func newRoute(pattern string, h *Handler) *Route {
	if !strings.HasSuffix(pattern, "$") {
		pattern += "$"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return &Route{err: fmt.Errorf("router: compile pattern %q: %w", pattern, err)}
	}
	return &Route{
		pattern: re,
		path:    pathTemplate(re),
		handler: h,
	}
}

// Regexp returns the compiled route pattern.
func (r *Route) Regexp() (*regexp.Regexp, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.pattern, nil
}

// PathTemplate returns the printf-style path derived from the pattern, with
// one %s slot per capture group. It fails when the route did not compile or
// when no template is derivable (nested groups, or escapes that cannot be
// unquoted back to literal text).
func (r *Route) PathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.path == "" {
		return "", fmt.Errorf("router: no path template derivable from pattern %q", r.pattern.String())
	}
	return r.path, nil
}

// Handler returns the handler registered for this route.
func (r *Route) Handler() *Handler { return r.handler }

// pathTemplate converts a route regexp into a printf-style path by
// replacing each capture group with a %s slot and unquoting the literal
// fragments between groups. It returns "" when the pattern has nested
// groups or fragments that are not plain escaped text.
func pathTemplate(re *regexp.Regexp) string {
	pattern := strings.TrimPrefix(re.String(), "^")
	pattern = strings.TrimSuffix(pattern, "$")

	// Nested or non-capturing groups make the split below miscount slots.
	if re.NumSubexp() != strings.Count(pattern, "(") {
		return ""
	}

	var b strings.Builder
	for i, frag := range strings.Split(pattern, "(") {
		if i == 0 {
			lit, ok := unescape(frag)
			if !ok {
				return ""
			}
			b.WriteString(lit)
			continue
		}
		end := strings.IndexByte(frag, ')')
		if end < 0 {
			return ""
		}
		lit, ok := unescape(frag[end+1:])
		if !ok {
			return ""
		}
		b.WriteString("%s")
		b.WriteString(lit)
	}
	return b.String()
}

// unescape reverses regexp.QuoteMeta on a literal fragment. An escape of a
// word character (a character class such as \d) has no literal equivalent
// and makes the fragment unquotable.
func unescape(s string) (string, bool) {
	if !strings.ContainsRune(s, '\\') {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		e := s[i]
		if e == '_' || ('a' <= e && e <= 'z') || ('A' <= e && e <= 'Z') || ('0' <= e && e <= '9') {
			return "", false
		}
		b.WriteByte(e)
	}
	return b.String(), true
}

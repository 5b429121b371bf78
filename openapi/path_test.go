package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aemitos/tornopen/router"
)

func route(t *testing.T, pattern string) *router.Route {
	t.Helper()
	return router.NewTable().Handle(pattern, &router.Handler{})
}

func TestTranslatePath(t *testing.T) {
	t.Run("no capture groups pass through", func(t *testing.T) {
		path, err := translatePath(route(t, "/pets"))
		require.NoError(t, err)
		assert.Equal(t, "/pets", path)
	})

	t.Run("trailing slash stripped", func(t *testing.T) {
		path, err := translatePath(route(t, "/pets/"))
		require.NoError(t, err)
		assert.Equal(t, "/pets", path)
	})

	t.Run("trailing wildcard stripped", func(t *testing.T) {
		path, err := translatePath(route(t, `/pets/(?P<pet_id>[^/]+)/`))
		require.NoError(t, err)
		assert.Equal(t, "/pets/{pet_id}", path)
	})

	t.Run("groups ordered by capture index not name", func(t *testing.T) {
		path, err := translatePath(route(t, `/orgs/(?P<zebra>[^/]+)/repos/(?P<alpha>[^/]+)`))
		require.NoError(t, err)
		assert.Equal(t, "/orgs/{zebra}/repos/{alpha}", path)
	})

	t.Run("unnamed group mixed in fails loudly", func(t *testing.T) {
		_, err := translatePath(route(t, `/v([0-9]+)/pets/(?P<pet_id>[^/]+)`))
		assert.ErrorContains(t, err, "named groups")
	})

	t.Run("underivable template fails loudly", func(t *testing.T) {
		_, err := translatePath(route(t, `/items/((?P<id>[0-9]+))`))
		assert.ErrorContains(t, err, "no path template")
	})

	t.Run("invalid pattern fails loudly", func(t *testing.T) {
		_, err := translatePath(route(t, `/items/(`))
		assert.ErrorContains(t, err, "compile pattern")
	})
}

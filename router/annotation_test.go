package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Compile-time check that every descriptor satisfies Type.
var (
	_ Type = String
	_ Type = List{}
	_ Type = Optional{}
	_ Type = Enum{}
)

func TestEnumOf(t *testing.T) {
	t.Run("declaration order preserved", func(t *testing.T) {
		e := EnumOf("asc", "desc")
		assert.Equal(t, []any{"asc", "desc"}, e.Values)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, EnumOf().Values)
	})
}

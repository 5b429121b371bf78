package openapi

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOwner struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type testPet struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Age       *int       `json:"age"`
	Owner     *testOwner `json:"owner"`
	CreatedAt time.Time  `json:"created_at"`
}

func (testPet) OpenAPIDescription() string {
	return "A pet in the store.\n"
}

type testEvent struct {
	Kind string `json:"kind" openapi:"enum=created|deleted"`
	Seq  int    `json:"seq" openapi:"minimum=0,example=42"`
	Note string `json:"note" openapi:"description=Free-form text,maxLength=120"`
}

func (testEvent) OpenAPIExample() any {
	return testEvent{Kind: "created", Seq: 1}
}

func TestModelSchema(t *testing.T) {
	t.Run("nil model has no schema", func(t *testing.T) {
		assert.Nil(t, ModelSchema(nil))
	})

	t.Run("root struct inlines", func(t *testing.T) {
		schema := ModelSchema(testOwner{})
		require.NotNil(t, schema)
		assert.Empty(t, schema.Ref)
		assert.Equal(t, "object", schema.Type)
		assert.Equal(t, "testOwner", schema.Title)
	})

	t.Run("pointer model unwraps", func(t *testing.T) {
		assert.Equal(t, ModelSchema(testOwner{}), ModelSchema(&testOwner{}))
	})

	t.Run("properties and required", func(t *testing.T) {
		schema := ModelSchema(testOwner{})
		require.Contains(t, schema.Properties, "name")
		require.Contains(t, schema.Properties, "email")
		assert.Equal(t, "string", schema.Properties["name"].Type)
		assert.Equal(t, []string{"name"}, schema.Required, "omitempty fields are optional")
	})

	t.Run("pointer field is optional", func(t *testing.T) {
		schema := ModelSchema(testPet{})
		assert.NotContains(t, schema.Required, "age")
		assert.NotContains(t, schema.Required, "owner")
		assert.Contains(t, schema.Required, "name")
	})

	t.Run("nested struct becomes ref with definition", func(t *testing.T) {
		schema := ModelSchema(testPet{})
		require.Contains(t, schema.Properties, "owner")
		assert.Equal(t, "#/components/schemas/testOwner", schema.Properties["owner"].Ref)

		require.Contains(t, schema.Defs, "testOwner")
		def := schema.Defs["testOwner"]
		assert.Equal(t, "object", def.Type)
		assert.Contains(t, def.Properties, "name")
	})

	t.Run("uuid and time formats", func(t *testing.T) {
		schema := ModelSchema(testPet{})
		assert.Equal(t, &Schema{Type: "string", Format: "uuid"}, schema.Properties["id"])
		assert.Equal(t, &Schema{Type: "string", Format: "date-time"}, schema.Properties["created_at"])
	})

	t.Run("describer text becomes description", func(t *testing.T) {
		schema := ModelSchema(testPet{})
		assert.Equal(t, "A pet in the store.", schema.Description)
	})

	t.Run("exampler value becomes example", func(t *testing.T) {
		schema := ModelSchema(testEvent{})
		assert.Equal(t, testEvent{Kind: "created", Seq: 1}, schema.Example)
	})

	t.Run("byte slice renders as byte string", func(t *testing.T) {
		schema := ModelSchema(struct {
			Data []byte `json:"data"`
		}{})
		assert.Equal(t, &Schema{Type: "string", Format: "byte"}, schema.Properties["data"])
	})

	t.Run("slice of structs", func(t *testing.T) {
		schema := ModelSchema(struct {
			Owners []testOwner `json:"owners"`
		}{})
		require.Contains(t, schema.Properties, "owners")
		owners := schema.Properties["owners"]
		assert.Equal(t, "array", owners.Type)
		require.NotNil(t, owners.Items)
		assert.Equal(t, "#/components/schemas/testOwner", owners.Items.Ref)
		assert.Contains(t, schema.Defs, "testOwner")
	})

	t.Run("string-keyed map", func(t *testing.T) {
		schema := ModelSchema(struct {
			Labels map[string]string `json:"labels"`
		}{})
		labels := schema.Properties["labels"]
		assert.Equal(t, "object", labels.Type)
		require.NotNil(t, labels.AdditionalProperties)
		assert.Equal(t, "string", labels.AdditionalProperties.Type)
	})

	t.Run("skipped and unexported fields", func(t *testing.T) {
		schema := ModelSchema(struct {
			Keep string `json:"keep"`
			Skip string `json:"-"`
			none string
		}{})
		assert.Contains(t, schema.Properties, "keep")
		assert.NotContains(t, schema.Properties, "Skip")
		assert.Len(t, schema.Properties, 1)
	})

	t.Run("untagged field keeps its Go name", func(t *testing.T) {
		schema := ModelSchema(struct {
			Plain int
		}{})
		assert.Contains(t, schema.Properties, "Plain")
	})

	t.Run("embedded struct inlines", func(t *testing.T) {
		type base struct {
			ID int `json:"id"`
		}
		schema := ModelSchema(struct {
			base
			Name string `json:"name"`
		}{})
		assert.Contains(t, schema.Properties, "id")
		assert.Contains(t, schema.Properties, "name")
		assert.ElementsMatch(t, []string{"id", "name"}, schema.Required)
	})

	t.Run("pointer-embedded fields all optional", func(t *testing.T) {
		type base struct {
			ID int `json:"id"`
		}
		schema := ModelSchema(struct {
			*base
			Name string `json:"name"`
		}{})
		assert.Contains(t, schema.Properties, "id")
		assert.Equal(t, []string{"name"}, schema.Required)
	})

	t.Run("interface field is dropped", func(t *testing.T) {
		schema := ModelSchema(struct {
			Payload any    `json:"payload"`
			Name    string `json:"name"`
		}{})
		assert.NotContains(t, schema.Properties, "payload")
		assert.Contains(t, schema.Properties, "name")
	})
}

func TestApplyFieldTag(t *testing.T) {
	t.Run("constraints", func(t *testing.T) {
		schema := ModelSchema(testEvent{})

		kind := schema.Properties["kind"]
		assert.Equal(t, []any{"created", "deleted"}, kind.Enum)

		seq := schema.Properties["seq"]
		require.NotNil(t, seq.Minimum)
		assert.Equal(t, float64(0), *seq.Minimum)
		assert.Equal(t, int64(42), seq.Example)

		note := schema.Properties["note"]
		assert.Equal(t, "Free-form text", note.Description)
		require.NotNil(t, note.MaxLength)
		assert.Equal(t, 120, *note.MaxLength)
	})

	t.Run("format and pattern", func(t *testing.T) {
		schema := ModelSchema(struct {
			Email string `json:"email" openapi:"format=email,pattern=^.+@.+$"`
		}{})
		email := schema.Properties["email"]
		assert.Equal(t, "email", email.Format)
		assert.Equal(t, "^.+@.+$", email.Pattern)
	})

	t.Run("example parsed per schema type", func(t *testing.T) {
		schema := ModelSchema(struct {
			Ratio float64 `json:"ratio" openapi:"example=0.5"`
			Live  bool    `json:"live" openapi:"example=true"`
			Name  string  `json:"name" openapi:"example=spot"`
		}{})
		assert.Equal(t, 0.5, schema.Properties["ratio"].Example)
		assert.Equal(t, true, schema.Properties["live"].Example)
		assert.Equal(t, "spot", schema.Properties["name"].Example)
	})
}

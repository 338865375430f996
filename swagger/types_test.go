package swagger

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocumentMarshalJSON(t *testing.T) {
	t.Run("extra fields pass through", func(t *testing.T) {
		doc := &Document{
			Swagger: "2.0",
			Info:    Info{Title: "Test", Version: "1.0.0"},
			Paths:   map[string]*PathItem{},
			Extra: map[string]any{
				"x-audience": "internal",
			},
		}

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "internal", m["x-audience"])
	})

	t.Run("extra fields never shadow typed fields", func(t *testing.T) {
		doc := &Document{
			Swagger: "2.0",
			Info:    Info{Title: "Test", Version: "1.0.0"},
			Paths:   map[string]*PathItem{},
			Extra: map[string]any{
				"swagger": "9.9",
			},
		}

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "2.0", m["swagger"])
	})

	t.Run("no extra fields", func(t *testing.T) {
		doc := &Document{
			Swagger: "2.0",
			Info:    Info{Title: "Test", Version: "1.0.0"},
			Paths:   map[string]*PathItem{},
		}

		data, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"swagger":"2.0"`)
	})
}

func TestDocumentMarshalYAML(t *testing.T) {
	t.Run("typed fields first, extra keys sorted after", func(t *testing.T) {
		doc := &Document{
			Swagger: "2.0",
			Info:    Info{Title: "Test", Version: "1.0.0"},
			Paths:   map[string]*PathItem{},
			Extra: map[string]any{
				"x-b": 2,
				"x-a": 1,
			},
		}

		data, err := yaml.Marshal(doc)
		require.NoError(t, err)

		text := string(data)
		assert.True(t, strings.HasPrefix(text, "swagger:"), "got: %s", text)
		assert.Less(t, strings.Index(text, "x-a:"), strings.Index(text, "x-b:"))
	})

	t.Run("extra fields never shadow typed fields", func(t *testing.T) {
		doc := &Document{
			Swagger: "2.0",
			Info:    Info{Title: "Test", Version: "1.0.0"},
			Paths:   map[string]*PathItem{},
			Extra:   map[string]any{"swagger": "9.9"},
		}

		data, err := yaml.Marshal(doc)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, yaml.Unmarshal(data, &m))
		assert.Equal(t, "2.0", m["swagger"])
	})
}

func TestSchemaMarshal(t *testing.T) {
	t.Run("required omitted when empty", func(t *testing.T) {
		data, err := json.Marshal(&Schema{
			Properties: map[string]*Schema{"name": {Type: "string"}},
		})
		require.NoError(t, err)
		assert.NotContains(t, string(data), `"required"`)
	})

	t.Run("ref renders alone", func(t *testing.T) {
		data, err := json.Marshal(&Schema{Ref: "#/definitions/Pet"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"$ref": "#/definitions/Pet"}`, string(data))
	})
}

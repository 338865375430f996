package swagger

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apikit/swaggen/schema"
)

func TestToSwaggerPath(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		assert.Equal(t, "/pets", ToSwaggerPath("/pets"))
	})

	t.Run("single parameter", func(t *testing.T) {
		assert.Equal(t, "/pets/{id}", ToSwaggerPath("/pets/:id"))
	})

	t.Run("multiple parameters", func(t *testing.T) {
		assert.Equal(t, "/pets/{id}/owners/{ownerId}",
			ToSwaggerPath("/pets/:id/owners/:ownerId"))
	})

	t.Run("trailing parameter", func(t *testing.T) {
		assert.Equal(t, "/search/{query}", ToSwaggerPath("/search/:query"))
	})
}

func petstoreInput() Input {
	pet := petSchema()
	return Input{
		Info: &Info{Title: "Petstore", Version: "1.0.0"},
		Paths: map[string][]RouteOperation{
			"/pets": {
				{
					Method:  "GET",
					Summary: "List pets",
					Tags:    []string{"pets"},
					Parameters: []RouteParam{
						{In: InQuery, Schema: schema.MapOf(
							schema.Optional("limit", schema.Int()),
						)},
					},
					Responses: map[int]RouteResponse{
						200: {Description: "all pets", Schema: schema.SeqOf(pet)},
					},
				},
				{
					Method:  "POST",
					Summary: "Create a pet",
					Parameters: []RouteParam{
						{In: InBody, Schema: pet},
					},
					Responses: map[int]RouteResponse{
						201: {Description: "created", Schema: pet},
					},
				},
			},
			"/pets/:id": {
				{
					Method: "GET",
					Parameters: []RouteParam{
						{In: InPath, Schema: schema.MapOf(
							schema.Required("id", schema.String()),
						)},
					},
					Responses: map[int]RouteResponse{
						200: {Description: "the pet", Schema: pet},
						404: {Description: "not found", Schema: schema.MapOf(
							schema.Required("message", schema.String()),
						)},
					},
				},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Run("assembles paths, operations and definitions", func(t *testing.T) {
		doc, err := Build(petstoreInput())
		require.NoError(t, err)

		assert.Equal(t, "2.0", doc.Swagger)
		assert.Equal(t, "Petstore", doc.Info.Title)

		require.Contains(t, doc.Paths, "/pets")
		require.Contains(t, doc.Paths, "/pets/{id}")

		pets := doc.Paths["/pets"]
		require.NotNil(t, pets.Get)
		require.NotNil(t, pets.Post)
		assert.Equal(t, "List pets", pets.Get.Summary)
		assert.Equal(t, []string{"pets"}, pets.Get.Tags)

		byID := doc.Paths["/pets/{id}"]
		require.NotNil(t, byID.Get)
		require.Len(t, byID.Get.Parameters, 1)
		assert.Equal(t, "path", byID.Get.Parameters[0].In)

		require.Contains(t, doc.Definitions, "Pet")
		assert.Equal(t, []string{"name"}, doc.Definitions["Pet"].Required)
	})

	t.Run("defaults fill missing top-level fields", func(t *testing.T) {
		doc, err := Build(Input{})
		require.NoError(t, err)

		assert.Equal(t, "2.0", doc.Swagger)
		assert.Equal(t, Info{Title: "Swagger API", Version: "0.0.1"}, doc.Info)
		assert.Equal(t, []string{"application/json"}, doc.Produces)
		assert.Equal(t, []string{"application/json"}, doc.Consumes)
		assert.Empty(t, doc.Paths)
		assert.Nil(t, doc.Definitions)
	})

	t.Run("caller input overrides defaults entirely", func(t *testing.T) {
		doc, err := Build(Input{
			Info:     &Info{Title: "Mine", Version: "9.9.9"},
			Produces: []string{"application/xml"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Mine", doc.Info.Title)
		assert.Equal(t, "9.9.9", doc.Info.Version)
		assert.Equal(t, []string{"application/xml"}, doc.Produces)
		assert.Equal(t, []string{"application/json"}, doc.Consumes)
	})

	t.Run("document metadata passes through", func(t *testing.T) {
		doc, err := Build(Input{
			Host:     "api.example.com",
			BasePath: "/v1",
			Schemes:  []string{"https"},
			Tags:     []Tag{{Name: "pets"}},
		})
		require.NoError(t, err)

		assert.Equal(t, "api.example.com", doc.Host)
		assert.Equal(t, "/v1", doc.BasePath)
		assert.Equal(t, []string{"https"}, doc.Schemes)
		require.Len(t, doc.Tags, 1)
	})

	t.Run("malformed body parameter fails the build", func(t *testing.T) {
		_, err := Build(Input{
			Paths: map[string][]RouteOperation{
				"/broken": {{
					Method: "POST",
					Parameters: []RouteParam{
						{In: InBody, Schema: schema.String()},
					},
				}},
			},
		})

		var shapeErr *SchemaShapeError
		require.ErrorAs(t, err, &shapeErr)
	})

	t.Run("unknown methods are ignored", func(t *testing.T) {
		doc, err := Build(Input{
			Paths: map[string][]RouteOperation{
				"/pets": {{Method: "SUBSCRIBE"}},
			},
		})
		require.NoError(t, err)

		item := doc.Paths["/pets"]
		assert.Equal(t, &PathItem{}, item)
	})
}

func TestBuildProperties(t *testing.T) {
	t.Run("every reference resolves to a definition", func(t *testing.T) {
		doc, err := Build(petstoreInput())
		require.NoError(t, err)

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var tree any
		require.NoError(t, json.Unmarshal(data, &tree))

		for _, ref := range collectRefs(tree) {
			name, found := strings.CutPrefix(ref, "#/definitions/")
			require.True(t, found, "unexpected ref %q", ref)
			assert.Contains(t, doc.Definitions, name)
		}
	})

	t.Run("rebuilding an unchanged input is byte identical", func(t *testing.T) {
		first, err := Build(petstoreInput())
		require.NoError(t, err)
		second, err := Build(petstoreInput())
		require.NoError(t, err)

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)

		assert.Equal(t, string(a), string(b))
	})

	t.Run("document loads as Swagger 2.0", func(t *testing.T) {
		doc, err := Build(petstoreInput())
		require.NoError(t, err)

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var loaded openapi2.T
		require.NoError(t, json.Unmarshal(data, &loaded))

		assert.Equal(t, "2.0", loaded.Swagger)
		assert.Equal(t, "Petstore", loaded.Info.Title)
		assert.Contains(t, loaded.Paths, "/pets/{id}")
		assert.Contains(t, loaded.Definitions, "Pet")
	})
}

// collectRefs walks a decoded JSON tree and returns every $ref string.
func collectRefs(v any) []string {
	var refs []string
	switch node := v.(type) {
	case map[string]any:
		for key, value := range node {
			if key == "$ref" {
				if s, ok := value.(string); ok {
					refs = append(refs, s)
				}
				continue
			}
			refs = append(refs, collectRefs(value)...)
		}
	case []any:
		for _, value := range node {
			refs = append(refs, collectRefs(value)...)
		}
	}
	return refs
}

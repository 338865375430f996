package swagger

import (
	"sort"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document represents the root of a Swagger 2.0 document.
//
// Extra holds arbitrary additional top-level fields supplied by the
// caller. They are passed through verbatim on serialization but never
// shadow a field the builder computed.
//
// See: https://swagger.io/specification/v2/#swagger-object
type Document struct {
	Swagger             string                     `json:"swagger" yaml:"swagger"`
	Info                Info                       `json:"info" yaml:"info"`
	Host                string                     `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath            string                     `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Schemes             []string                   `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Consumes            []string                   `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces            []string                   `json:"produces,omitempty" yaml:"produces,omitempty"`
	Paths               map[string]*PathItem       `json:"paths" yaml:"paths"`
	Definitions         map[string]*Schema         `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme `json:"securityDefinitions,omitempty" yaml:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement      `json:"security,omitempty" yaml:"security,omitempty"`
	Tags                []Tag                      `json:"tags,omitempty" yaml:"tags,omitempty"`
	ExternalDocs        *ExternalDocs              `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`

	Extra map[string]any `json:"-" yaml:"-"`
}

// Info provides metadata about the API.
//
// See: https://swagger.io/specification/v2/#info-object
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
	Version        string   `json:"version" yaml:"version"`
}

// Contact represents contact information for the API.
//
// See: https://swagger.io/specification/v2/#contact-object
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License represents license information for the API.
//
// See: https://swagger.io/specification/v2/#license-object
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// PathItem describes the operations available on a single path.
//
// See: https://swagger.io/specification/v2/#path-item-object
type PathItem struct {
	Ref        string       `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Get        *Operation   `json:"get,omitempty" yaml:"get,omitempty"`
	Put        *Operation   `json:"put,omitempty" yaml:"put,omitempty"`
	Post       *Operation   `json:"post,omitempty" yaml:"post,omitempty"`
	Delete     *Operation   `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options    *Operation   `json:"options,omitempty" yaml:"options,omitempty"`
	Head       *Operation   `json:"head,omitempty" yaml:"head,omitempty"`
	Patch      *Operation   `json:"patch,omitempty" yaml:"patch,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Operation describes a single API operation on a path.
//
// See: https://swagger.io/specification/v2/#operation-object
type Operation struct {
	Tags         []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary      string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description  string                `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	OperationID  string                `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Consumes     []string              `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces     []string              `json:"produces,omitempty" yaml:"produces,omitempty"`
	Parameters   []*Parameter          `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses    map[string]*Response  `json:"responses" yaml:"responses"`
	Schemes      []string              `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Deprecated   bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Security     []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter describes a single operation parameter. Body parameters carry
// a Schema; all other locations describe the value inline with type,
// format and the other primitive fields.
//
// See: https://swagger.io/specification/v2/#parameter-object
type Parameter struct {
	Name             string  `json:"name" yaml:"name"`
	In               string  `json:"in" yaml:"in"`
	Description      string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required         bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema           *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
	Type             string  `json:"type,omitempty" yaml:"type,omitempty"`
	Format           string  `json:"format,omitempty" yaml:"format,omitempty"`
	AllowEmptyValue  bool    `json:"allowEmptyValue,omitempty" yaml:"allowEmptyValue,omitempty"`
	Items            *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	CollectionFormat string  `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`
	Default          any     `json:"default,omitempty" yaml:"default,omitempty"`
	Enum             []any   `json:"enum,omitempty" yaml:"enum,omitempty"`
	UniqueItems      bool    `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
}

// Response describes a single response from an API operation.
// The description field is required per the specification.
//
// See: https://swagger.io/specification/v2/#response-object
type Response struct {
	Description string             `json:"description" yaml:"description"`
	Schema      *Schema            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Headers     map[string]*Header `json:"headers,omitempty" yaml:"headers,omitempty"`
	Examples    map[string]any     `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Header describes a single response header. It follows the structure of
// a non-body parameter; the name lives in the key of the containing map.
//
// See: https://swagger.io/specification/v2/#header-object
type Header struct {
	Description      string  `json:"description,omitempty" yaml:"description,omitempty"`
	Type             string  `json:"type" yaml:"type"`
	Format           string  `json:"format,omitempty" yaml:"format,omitempty"`
	Items            *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	CollectionFormat string  `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`
	Default          any     `json:"default,omitempty" yaml:"default,omitempty"`
}

// Schema represents a Swagger 2.0 Schema Object, the subset of JSON
// Schema Draft 4 the specification adopts.
//
// See: https://swagger.io/specification/v2/#schema-object
type Schema struct {
	Ref              string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type             string             `json:"type,omitempty" yaml:"type,omitempty"`
	Format           string             `json:"format,omitempty" yaml:"format,omitempty"`
	Title            string             `json:"title,omitempty" yaml:"title,omitempty"`
	Description      string             `json:"description,omitempty" yaml:"description,omitempty"`
	Default          any                `json:"default,omitempty" yaml:"default,omitempty"`
	Enum             []any              `json:"enum,omitempty" yaml:"enum,omitempty"`
	Pattern          string             `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Minimum          *float64           `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64           `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength        *int               `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength        *int               `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Items            *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems         *int               `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems         *int               `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	UniqueItems      bool               `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required         []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProps  *Schema            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	AllOf            []*Schema          `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	Discriminator    string             `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	ReadOnly         bool               `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Example          any                `json:"example,omitempty" yaml:"example,omitempty"`
	ExternalDocs     *ExternalDocs      `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	CollectionFormat string             `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`
}

// Tag adds metadata to a single tag used by Operation Objects.
//
// See: https://swagger.io/specification/v2/#tag-object
type Tag struct {
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// ExternalDocs references external documentation.
//
// See: https://swagger.io/specification/v2/#external-documentation-object
type ExternalDocs struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
}

// SecurityScheme describes a security scheme (basic, apiKey or oauth2).
//
// See: https://swagger.io/specification/v2/#security-scheme-object
type SecurityScheme struct {
	Type             string            `json:"type" yaml:"type"`
	Description      string            `json:"description,omitempty" yaml:"description,omitempty"`
	Name             string            `json:"name,omitempty" yaml:"name,omitempty"`
	In               string            `json:"in,omitempty" yaml:"in,omitempty"`
	Flow             string            `json:"flow,omitempty" yaml:"flow,omitempty"`
	AuthorizationURL string            `json:"authorizationUrl,omitempty" yaml:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty" yaml:"tokenUrl,omitempty"`
	Scopes           map[string]string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// SecurityRequirement lists required security schemes and, for oauth2,
// the scopes they must grant.
//
// See: https://swagger.io/specification/v2/#security-requirement-object
type SecurityRequirement map[string][]string

// MarshalJSON serializes the document including Extra pass-through
// fields. Keys already produced by the typed fields are never shadowed.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	base, err := json.Marshal((*alias)(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range d.Extra {
		if _, ok := merged[key]; ok {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}

	return json.Marshal(merged)
}

// MarshalYAML serializes the document as a YAML mapping with the typed
// fields first (struct order) followed by Extra keys in sorted order.
func (d *Document) MarshalYAML() (any, error) {
	type alias Document
	var root yaml.Node
	if err := root.Encode((*alias)(d)); err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return &root, nil
	}

	present := make(map[string]bool, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		present[root.Content[i].Value] = true
	}

	keys := make([]string, 0, len(d.Extra))
	for key := range d.Extra {
		if !present[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		var keyNode, valueNode yaml.Node
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		if err := valueNode.Encode(d.Extra[key]); err != nil {
			return nil, err
		}
		root.Content = append(root.Content, &keyNode, &valueNode)
	}

	return &root, nil
}

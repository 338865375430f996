package swagger

import "github.com/apikit/swaggen/schema"

// ParamIn identifies the location of a route parameter.
//
// See: https://swagger.io/specification/v2/#parameter-object
type ParamIn string

const (
	InBody     ParamIn = "body"
	InQuery    ParamIn = "query"
	InPath     ParamIn = "path"
	InHeader   ParamIn = "header"
	InFormData ParamIn = "formData"
)

// RouteParam declares one parameter of a route operation: where it lives
// and the schema describing it. Body parameters describe the whole body
// with a single map or container schema; all other locations use a map
// schema whose keys become individual Swagger parameters.
type RouteParam struct {
	In     ParamIn
	Schema *schema.Node
}

// RouteResponse declares the response for one status code. A nil Schema
// means the response carries no body description.
type RouteResponse struct {
	Description string
	Schema      *schema.Node
	Headers     map[string]*Header
}

// RouteOperation is the externally assembled metadata for one
// (path, method) pair.
type RouteOperation struct {
	Method      string
	Summary     string
	Description string
	OperationID string
	Tags        []string
	Deprecated  bool
	Security    []SecurityRequirement
	Parameters  []RouteParam
	Responses   map[int]RouteResponse
}

// Input is the document-level description handed to Build. Zero-valued
// fields fall back to built-in defaults; Extra fields pass through to the
// serialized document verbatim.
type Input struct {
	Info                *Info
	Host                string
	BasePath            string
	Schemes             []string
	Consumes            []string
	Produces            []string
	Tags                []Tag
	ExternalDocs        *ExternalDocs
	SecurityDefinitions map[string]*SecurityScheme
	Security            []SecurityRequirement

	// Paths maps a path template (":name" parameter tokens) to the
	// operations declared on it.
	Paths map[string][]RouteOperation

	Extra map[string]any
}

package swagger

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// pathParamRegexp matches ":name" path parameter tokens: a colon
// followed by a run of non-slash characters.
var pathParamRegexp = regexp.MustCompile(`:([^/]+)`)

// ToSwaggerPath rewrites every ":name" token of a path template into
// Swagger's "{name}" form.
//
//	/pets/:id/owners/:ownerId -> /pets/{id}/owners/{ownerId}
func ToSwaggerPath(template string) string {
	return pathParamRegexp.ReplaceAllString(template, "{$1}")
}

// Generator builds Swagger 2.0 documents from route metadata. The zero
// value is usable; New exists to supply a non-default Config.
type Generator struct {
	cfg Config
}

// New creates a generator with the given conversion config.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Build assembles a complete document with default Config.
func Build(input Input) (*Document, error) {
	return New(Config{}).Build(input)
}

// Build converts the declared routes into a Swagger 2.0 document:
// rewritten paths with per-method operations, a flat definitions
// registry covering every named schema reachable from any route, and
// built-in defaults for the top-level fields the input leaves unset.
func (g *Generator) Build(input Input) (*Document, error) {
	conv := converter{cfg: g.cfg}

	paths := make(map[string]*PathItem, len(input.Paths))
	for tpl, ops := range input.Paths {
		swaggerPath := ToSwaggerPath(tpl)
		item, ok := paths[swaggerPath]
		if !ok {
			item = &PathItem{}
			paths[swaggerPath] = item
		}
		for _, op := range ops {
			operation, err := conv.buildOperation(op)
			if err != nil {
				return nil, fmt.Errorf("build %s %s: %w", op.Method, tpl, err)
			}
			assignOperation(item, op.Method, operation)
		}
	}

	definitions := conv.buildDefinitions(CollectModels(ExtractModels(input.Paths)))

	doc := &Document{
		Swagger:             "2.0",
		Info:                Info{Title: "Swagger API", Version: "0.0.1"},
		Consumes:            []string{"application/json"},
		Produces:            []string{"application/json"},
		Host:                input.Host,
		BasePath:            input.BasePath,
		Schemes:             input.Schemes,
		Tags:                input.Tags,
		ExternalDocs:        input.ExternalDocs,
		SecurityDefinitions: input.SecurityDefinitions,
		Security:            input.Security,
		Paths:               paths,
		Definitions:         definitions,
		Extra:               input.Extra,
	}
	if input.Info != nil {
		doc.Info = *input.Info
	}
	if len(input.Consumes) > 0 {
		doc.Consumes = input.Consumes
	}
	if len(input.Produces) > 0 {
		doc.Produces = input.Produces
	}
	return doc, nil
}

// buildOperation converts one route operation, dropping the method key
// which is re-expressed as the PathItem field the operation lands on.
func (c converter) buildOperation(op RouteOperation) (*Operation, error) {
	params, err := c.convertParameters(op.Parameters)
	if err != nil {
		return nil, err
	}
	return &Operation{
		Tags:        op.Tags,
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.OperationID,
		Deprecated:  op.Deprecated,
		Security:    op.Security,
		Parameters:  params,
		Responses:   c.convertResponses(op.Responses),
	}, nil
}

// assignOperation places an operation on the PathItem field matching the
// HTTP method. Unknown methods are ignored; validating them is the
// routing layer's concern.
func assignOperation(item *PathItem, method string, op *Operation) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPost:
		item.Post = op
	case http.MethodDelete:
		item.Delete = op
	case http.MethodOptions:
		item.Options = op
	case http.MethodHead:
		item.Head = op
	case http.MethodPatch:
		item.Patch = op
	}
}

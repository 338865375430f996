// Package swagger generates Swagger 2.0 documents from route metadata
// whose parameters and response bodies are described with schema trees.
//
// The pipeline is a pure transformation: anonymous nested map schemas
// receive deterministic names derived from their key path, every named
// schema reachable from any route is collected into one flat definitions
// registry, and each usage site either references a definition or
// inlines the schema.
//
// See: https://swagger.io/specification/v2/
//
// # Describing routes
//
// Routes are declared as data. Parameters carry a location and a schema;
// responses map status codes to a description and a schema:
//
//	pet := schema.Named("Pet", schema.MapOf(
//	    schema.Required("name", schema.String()),
//	    schema.Optional("age", schema.Int()),
//	))
//
//	input := swagger.Input{
//	    Info: &swagger.Info{Title: "Petstore", Version: "1.0.0"},
//	    Paths: map[string][]swagger.RouteOperation{
//	        "/pets/:id": {{
//	            Method:  "GET",
//	            Summary: "Fetch a pet",
//	            Parameters: []swagger.RouteParam{{
//	                In:     swagger.InPath,
//	                Schema: schema.MapOf(schema.Required("id", schema.String())),
//	            }},
//	            Responses: map[int]swagger.RouteResponse{
//	                200: {Description: "the pet", Schema: pet},
//	            },
//	        }},
//	    },
//	}
//
// # Building
//
// Build converts the input into a complete document:
//
//	doc, err := swagger.Build(input)
//
// Path templates use ":name" tokens and are rewritten to Swagger's
// "{name}" form. Named map schemas become entries of the definitions
// map and are referenced with "#/definitions/<name>"; anonymous schemas
// are inlined. Missing top-level fields fall back to built-in defaults
// (swagger "2.0", a default info block, JSON produces/consumes).
//
// # Serving
//
// Handle registers cached JSON, YAML and interactive docs endpoints on
// a net/http ServeMux:
//
//	mux := http.NewServeMux()
//	swagger.New(swagger.Config{}).Handle(mux, "/docs", input, nil)
//	// /docs/              -> interactive docs UI
//	// /docs/swagger.json  -> document as JSON
//	// /docs/swagger.yaml  -> document as YAML
package swagger

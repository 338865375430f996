package swagger

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DocsUI selects which interactive documentation UI to serve.
type DocsUI int

const (
	DocsSwaggerUI DocsUI = iota
	DocsRedoc
)

// HandleConfig configures the endpoints registered by Handle. The JSON
// and YAML endpoints serve the serialized document.
type HandleConfig struct {
	// UI selects the interactive docs UI (default: DocsSwaggerUI).
	UI DocsUI

	// Title overrides the HTML page title (default: document info.title).
	Title string

	// JSONFilename is the path for the JSON document endpoint
	// (default: "swagger.json"). Set to "-" to disable. Relative paths
	// are joined with the base path; absolute paths are used as-is.
	JSONFilename string

	// YAMLFilename is the path for the YAML document endpoint
	// (default: "swagger.yaml"). Set to "-" to disable. Follows the
	// same absolute/relative rules as JSONFilename.
	YAMLFilename string

	// DisableDocs disables the interactive HTML docs UI endpoint.
	DisableDocs bool
}

// jsonFilename returns the configured JSON filename, defaulting to "swagger.json".
func (cfg HandleConfig) jsonFilename() string {
	if cfg.JSONFilename == "" {
		return "swagger.json"
	}
	return cfg.JSONFilename
}

// yamlFilename returns the configured YAML filename, defaulting to "swagger.yaml".
func (cfg HandleConfig) yamlFilename() string {
	if cfg.YAMLFilename == "" {
		return "swagger.yaml"
	}
	return cfg.YAMLFilename
}

// resolvePath returns the full route path for a filename. Absolute
// filenames (starting with "/") are returned as-is; relative filenames
// are joined under basePath.
func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	if basePath == "" {
		return "/" + filename
	}
	return basePath + "/" + filename
}

// Handle registers document endpoints under the given base path:
//
//	<basePath>/            - interactive HTML docs (unless DisableDocs)
//	<JSONFilename path>    - document as JSON (unless JSONFilename is "-")
//	<YAMLFilename path>    - document as YAML (unless YAMLFilename is "-")
//
// The config parameter is optional; pass nil for defaults. The document
// is built once on first request and cached.
func (g *Generator) Handle(mux *http.ServeMux, basePath string, input Input, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	var (
		build     sync.Once
		doc       *Document
		buildErr  error
		buildOnce = func() (*Document, error) {
			build.Do(func() {
				doc, buildErr = g.Build(input)
			})
			return doc, buildErr
		}
	)

	jsonFile := cfg.jsonFilename()
	yamlFile := cfg.yamlFilename()

	var jsonPath, yamlPath string

	if jsonFile != "-" {
		jsonPath = resolvePath(basePath, jsonFile)
		registerJSON(mux, jsonPath, buildOnce)
	}

	if yamlFile != "-" {
		yamlPath = resolvePath(basePath, yamlFile)
		registerYAML(mux, yamlPath, buildOnce)
	}

	if !cfg.DisableDocs {
		// The docs UI references the JSON or YAML document path.
		specURL := jsonPath
		if specURL == "" {
			specURL = yamlPath
		}
		if specURL != "" {
			registerDocs(mux, basePath, input, cfg, specURL)
		}
	}
}

// registerJSON registers a handler serving the document as JSON.
func registerJSON(mux *http.ServeMux, path string, build func() (*Document, error)) {
	var (
		once sync.Once
		data []byte
		err  error
	)
	mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			var doc *Document
			if doc, err = build(); err == nil {
				data, err = json.MarshalIndent(doc, "", "  ")
			}
		})
		if err != nil {
			http.Error(w, "failed to serialize document as JSON", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

// registerYAML registers a handler serving the document as YAML.
func registerYAML(mux *http.ServeMux, path string, build func() (*Document, error)) {
	var (
		once sync.Once
		data []byte
		err  error
	)
	mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			var doc *Document
			if doc, err = build(); err == nil {
				data, err = yaml.Marshal(doc)
			}
		})
		if err != nil {
			http.Error(w, "failed to serialize document as YAML", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

// registerDocs registers the interactive HTML documentation UI.
func registerDocs(mux *http.ServeMux, basePath string, input Input, cfg *HandleConfig, specURL string) {
	var (
		once sync.Once
		data []byte
	)
	handler := func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			title := cfg.Title
			if title == "" && input.Info != nil {
				title = input.Info.Title
			}
			if title == "" {
				title = "Swagger API"
			}

			var page string
			switch cfg.UI {
			case DocsRedoc:
				page = redocTemplate(title, specURL)
			default:
				page = swaggerUITemplate(title, specURL)
			}
			data = []byte(page)
		})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
	if basePath == "" {
		// Root base path: register only "/" exactly, not the subtree.
		mux.HandleFunc("/{$}", handler)
	} else {
		mux.HandleFunc(basePath, handler)
		mux.HandleFunc(basePath+"/{$}", handler)
	}
}

func swaggerUITemplate(title, specURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"});
  </script>
</body>
</html>`, html.EscapeString(title), specURL)
}

func redocTemplate(title, specURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
</head>
<body>
  <redoc spec-url=%q></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`, html.EscapeString(title), specURL)
}

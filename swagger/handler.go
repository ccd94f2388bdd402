package swagger

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/h3kker/rebar/framer"
)

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// Title overrides the HTML page title (default: the generator's
	// info title).
	Title string

	// JSONFilename is the path for the JSON spec endpoint
	// (default: "swagger.json"). Set to "-" to disable.
	//
	// Relative paths are joined with the base path; paths starting with
	// "/" are used as-is.
	JSONFilename string

	// YAMLFilename is the path for the YAML spec endpoint
	// (default: "swagger.yaml"). Set to "-" to disable.
	// Follows the same absolute/relative rules as JSONFilename.
	YAMLFilename string

	// DisableDocs disables the interactive HTML docs endpoint.
	DisableDocs bool
}

func (cfg HandleConfig) jsonFilename() string {
	if cfg.JSONFilename == "" {
		return "swagger.json"
	}
	return cfg.JSONFilename
}

func (cfg HandleConfig) yamlFilename() string {
	if cfg.YAMLFilename == "" {
		return "swagger.yaml"
	}
	return cfg.YAMLFilename
}

// resolvePath returns the full route path for a filename. Absolute
// filenames (starting with "/") are returned as-is; relative filenames are
// joined under basePath.
func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	if basePath == "" {
		return "/" + filename
	}
	return basePath + "/" + filename
}

// Handle registers spec endpoints under the given base path:
//
//	<basePath>/            - interactive HTML docs (unless DisableDocs)
//	<JSONFilename path>    - generated spec as JSON  (unless JSONFilename is "-")
//	<YAMLFilename path>    - generated spec as YAML  (unless YAMLFilename is "-")
//
// The config parameter is optional; pass nil for defaults:
//
//	gen.Handle(mux, "/swagger", f, nil)
//
// The document is generated once on first request and cached; the route
// table must be frozen before the first request arrives. Generation errors
// surface as 500 responses.
func (g *Generator) Handle(m *http.ServeMux, basePath string, f *framer.Framer, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	jsonFile := cfg.jsonFilename()
	yamlFile := cfg.yamlFilename()

	var jsonPath, yamlPath string

	if jsonFile != "-" {
		jsonPath = resolvePath(basePath, jsonFile)
		g.registerJSON(m, jsonPath, f)
	}

	if yamlFile != "-" {
		yamlPath = resolvePath(basePath, yamlFile)
		g.registerYAML(m, yamlPath, f)
	}

	if !cfg.DisableDocs {
		specURL := jsonPath
		if specURL == "" {
			specURL = yamlPath
		}
		// Skip docs registration when no spec endpoint is available.
		if specURL != "" {
			g.registerDocs(m, basePath, cfg, specURL)
		}
	}
}

// registerJSON registers a handler serving the generated document as JSON.
func (g *Generator) registerJSON(m *http.ServeMux, path string, f *framer.Framer) {
	var (
		once     sync.Once
		data     []byte
		buildErr error
	)
	m.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			doc, err := g.Generate(f)
			if err != nil {
				buildErr = err
				return
			}
			data, buildErr = json.MarshalIndent(doc, "", "  ")
		})
		if buildErr != nil {
			http.Error(w, "failed to generate spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

// registerYAML registers a handler serving the generated document as YAML.
// The document is round-tripped through JSON so the YAML keys match the
// wire names from the json struct tags.
func (g *Generator) registerYAML(m *http.ServeMux, path string, f *framer.Framer) {
	var (
		once     sync.Once
		data     []byte
		buildErr error
	)
	m.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			doc, err := g.Generate(f)
			if err != nil {
				buildErr = err
				return
			}
			data, buildErr = yamlFromDocument(doc)
		})
		if buildErr != nil {
			http.Error(w, "failed to generate spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

func yamlFromDocument(doc *Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

// registerDocs registers a handler serving the interactive HTML docs page.
func (g *Generator) registerDocs(m *http.ServeMux, basePath string, cfg *HandleConfig, specURL string) {
	var (
		once sync.Once
		data []byte
	)
	handler := func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			title := cfg.Title
			if title == "" {
				title = g.info.Title
			}
			data = []byte(swaggerUITemplate(title, specURL))
		})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
	if basePath == "" {
		m.HandleFunc("/", handler)
	} else {
		m.HandleFunc(basePath, handler)
		m.HandleFunc(basePath+"/", handler)
	}
}

func swaggerUITemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"});
</script>
</body>
</html>`, html.EscapeString(title), specPath)
}

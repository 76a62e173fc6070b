package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed defaults
var defaults embed.FS

// Renderer resolves template names to sources and executes them against
// a parameter mapping. A Renderer with an empty directory serves the
// embedded default templates; a configured directory overrides them
// file by file. There is no package-level default environment: callers
// construct a Renderer explicitly and pass it down.
type Renderer struct {
	dir string
}

// NewRenderer returns a Renderer backed by dir, or by the embedded
// defaults when dir is empty.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: strings.TrimSpace(dir)}
}

// Render executes the named template with params. A single trailing
// newline in the template output is dropped so callers control the
// framing of the rendered block.
func (r *Renderer) Render(name string, params map[string]any) (string, error) {
	src, err := r.source(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (r *Renderer) source(name string) (string, error) {
	if r.dir != "" {
		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			return "", fmt.Errorf("read template %s: %w", name, err)
		}
		return string(data), nil
	}
	data, err := defaults.ReadFile("defaults/" + name)
	if err != nil {
		return "", fmt.Errorf("unknown template %s: %w", name, err)
	}
	return string(data), nil
}

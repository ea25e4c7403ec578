package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	TemplateIndex  = "index.html"
	TemplateResult = "result.html"
)

// TemplateRenderer implements echo.Renderer over the embedded page templates
type TemplateRenderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses every page together with the shared layout
func NewTemplateRenderer() (*TemplateRenderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{TemplateIndex, TemplateResult} {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &TemplateRenderer{pages: pages}, nil
}

// Render executes the layout of the named page
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

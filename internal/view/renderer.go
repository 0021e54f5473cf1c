package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Renderer renders a State into the page. Rendering the same state twice
// produces identical output.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for the given state.
func (r *Renderer) Render(w io.Writer, st State) error {
	return r.tmpl.Execute(w, st)
}

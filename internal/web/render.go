package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names defined by the embedded templates.
const (
	pageForm    = "form"
	pageResults = "results"
	pageError   = "error"
)

// Renderer holds the parsed page templates.
// It is built once at startup and handed to the server; nothing about it is
// request-scoped or mutated after construction.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("peyote").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named page into w with the given status.
// The page is rendered into a buffer first so a template failure never leaves
// a half-written response behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

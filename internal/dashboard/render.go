package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/cloud-ru/npv-dashboard/internal/narrative"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"safeHTML": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(templateFS, "templates/dashboard.html"))

// Page is the per-request state rendered on top of a View.
type Page struct {
	View        *View
	Mode        ViewMode
	ShowSidebar bool
	Narrative   narrative.State
}

// NarrativeButtonDisabled is true while a request is in flight.
func (p Page) NarrativeButtonDisabled() bool {
	return p.Narrative.IsPending()
}

// Render writes the full HTML page.
func Render(w io.Writer, p Page) error {
	if p.View == nil {
		return fmt.Errorf("render dashboard: nil view")
	}
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

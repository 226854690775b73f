package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages maps a page name to the template rendered as the layout content.
var pages = []string{"dashboard-page", "upload-page", "shared-page", "error-page"}

func loadTemplates() (map[string]*template.Template, error) {
	base, err := template.New("base").Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	out := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone templates for %s: %w", page, err)
		}
		if _, err := t.New("content").Parse(`{{template "` + page + `" .}}`); err != nil {
			return nil, fmt.Errorf("bind %s: %w", page, err)
		}
		out[page] = t
	}
	return out, nil
}

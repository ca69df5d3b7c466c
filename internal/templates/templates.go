// Package templates holds the page templates compiled into the binary.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"time"
)

const (
	BaseTemplate     = "base.html"
	partialsTemplate = "partials.html"
)

//go:embed *.html
var FS embed.FS

var funcs = template.FuncMap{
	"formatDate": formatDate,
	"fieldError": fieldError,
	"dict":       dict,
}

func formatDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006 15:04")
}

func fieldError(errs map[string]string, field string) string {
	return errs[field]
}

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

// Load parses every page in fsys together with the base layout and partials.
// The result is keyed by page file name, e.g. "index.html".
func Load(fsys fs.FS) (map[string]*template.Template, error) {
	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		name := path.Base(page)
		if name == BaseTemplate || name == partialsTemplate {
			continue
		}
		tmpl, err := template.New(BaseTemplate).Funcs(funcs).ParseFS(fsys, BaseTemplate, page, partialsTemplate)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

func MustLoad(fsys fs.FS) map[string]*template.Template {
	templates, err := Load(fsys)
	if err != nil {
		panic(err)
	}
	return templates
}

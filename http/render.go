package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"fyyur/entities"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templatesFS embed.FS

const layoutTemplate = "templates/layouts/main.html"

// Renderer executes a page template inside the shared layout. Templates are
// addressed by their path below templates/, e.g. "pages/home.html".
type Renderer struct {
	templates map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
	"fieldError": func(verr *entities.ValidationError, field string) string {
		return verr.For(field)
	},
	"hasGenre": func(genres []string, genre string) bool {
		for _, g := range genres {
			if g == genre {
				return true
			}
		}
		return false
	},
	"genres": func() []string {
		return genreChoices
	},
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: map[string]*template.Template{}}

	for _, dir := range []string{"pages", "forms", "errors"} {
		paths, err := fs.Glob(templatesFS, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, layoutTemplate, path)
			if err != nil {
				return nil, fmt.Errorf("could not parse template %s: %w", path, err)
			}
			r.templates[strings.TrimPrefix(path, "templates/")] = tmpl
		}
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}

var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Swing", "Other",
}

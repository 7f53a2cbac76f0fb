package httpd

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/session"
	"github.com/dictchannels/portal/web"
)

// PageData is the context every template renders with.
type PageData struct {
	Title     string
	Year      int
	Principal *session.Principal
	Flashes   []session.Flash
	Data      interface{}
}

// Renderer parses each page template against the shared layout once at
// startup and serves them from memory.
type Renderer struct {
	templates map[string]*template.Template
	logger    zerolog.Logger
}

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
	"datetime": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
	"money": func(amount float64) string {
		return fmt.Sprintf("%.2f", amount)
	},
}

func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	entries, err := fs.ReadDir(web.TemplatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" {
			continue
		}

		tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(
			web.TemplatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return &Renderer{
		templates: templates,
		logger:    logger,
	}, nil
}

func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) {
	tmpl, ok := rd.templates[page]
	if !ok {
		rd.logger.Error().Str("page", page).Msg("unknown template")
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		rd.logger.Error().Err(err).Str("page", page).Msg("failed to render template")
	}
}

// render loads the request's flashes and session principal into the page
// context before handing off to the renderer.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data interface{}) {
	flashes, err := h.sessions.PopFlashes(r.Context(), r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load flash messages")
	}

	principal := principalFrom(r)
	if principal == nil {
		if p, err := h.sessions.Get(r.Context(), r); err == nil {
			principal = p
		}
	}

	h.renderer.Render(w, status, page, PageData{
		Title:     title,
		Principal: principal,
		Flashes:   flashes,
		Data:      data,
	})
}

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/evyataryagoni/citysuggest/internal/logger"
	"github.com/evyataryagoni/citysuggest/internal/models"
	"github.com/evyataryagoni/citysuggest/internal/service"
)

const (
	// InputID is the id of the search input the suggestions are bound to
	InputID = "city_autocomplete"
	// FieldName is the form field name of the search input
	FieldName = "autocomp"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageConfig holds what the search page needs at render time
type PageConfig struct {
	Endpoint     string             // URL of the suggestion list, e.g. "/_autocomplete"
	Options      models.BindOptions // Passed to the widget unchanged
	BinderScript string             // Optional URL of the compiled binder bundle
}

// Pages renders the HTML pages
type Pages struct {
	home    *template.Template
	about   *template.Template
	config  PageConfig
	service *service.SuggestionService
	logger  *logger.Logger
}

type homeData struct {
	InputID      string
	FieldName    string
	Selector     string
	Endpoint     string
	Options      models.BindOptions
	BinderScript string
	Query        string
	Message      string
}

type aboutData struct {
	Options models.BindOptions
	Count   int
}

// NewPages parses the embedded templates
func NewPages(cfg PageConfig, svc *service.SuggestionService, log *logger.Logger) (*Pages, error) {
	if log == nil {
		log = logger.NewDefault()
	}

	home, err := template.ParseFS(templateFS, "templates/base.html", "templates/find.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse home template: %w", err)
	}
	about, err := template.ParseFS(templateFS, "templates/base.html", "templates/about.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse about template: %w", err)
	}

	return &Pages{
		home:    home,
		about:   about,
		config:  cfg,
		service: svc,
		logger:  log.WithComponent("Pages"),
	}, nil
}

// Home handles GET and POST on / and /home.
// A POST keeps the submitted name in the input.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		InputID:      InputID,
		FieldName:    FieldName,
		Selector:     "#" + InputID,
		Endpoint:     p.config.Endpoint,
		Options:      p.config.Options,
		BinderScript: p.config.BinderScript,
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		data.Query = strings.TrimSpace(r.PostForm.Get(FieldName))
		if data.Query != "" {
			data.Message = "Results for " + data.Query
		}
	}

	p.render(w, p.home, data)
}

// About handles GET /about
func (p *Pages) About(w http.ResponseWriter, r *http.Request) {
	data := aboutData{Options: p.config.Options}

	if list, err := p.service.List(r.Context()); err == nil {
		data.Count = len(list)
	} else {
		p.logger.Warn().Err(err).Msg("Suggestion count unavailable")
	}

	p.render(w, p.about, data)
}

// render executes into a buffer first so template errors still produce a clean 500
func (p *Pages) render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		p.logger.Error().Err(err).Msg("Template rendering failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

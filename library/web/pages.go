package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AntonStoeckl/library-books-go/library/features/query/checkouts"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	templateHello     = "hello.html"
	templateCheckouts = "checkouts.html"
	templateCheckout  = "checkout.html"
)

type pages struct {
	templates *template.Template
}

func parsePages() (*pages, error) {
	templates, err := template.New("pages").
		Funcs(template.FuncMap{"date": formatDate}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &pages{templates: templates}, nil
}

// render executes into a buffer first, so a failing template does not leave half a page behind.
func (p *pages) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := p.templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) helloWorld(w http.ResponseWriter, _ *http.Request) {
	s.pages.render(w, http.StatusOK, templateHello, nil)
}

func (s *Server) checkoutsPage(w http.ResponseWriter, r *http.Request) {
	result, err := s.handlers.Checkouts.Handle(r.Context(), checkouts.BuildQuery(ActorFrom(r.Context()), s.clock()))
	if err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}

	s.pages.render(w, http.StatusOK, templateCheckouts, result)
}

func (s *Server) checkoutPage(w http.ResponseWriter, r *http.Request) {
	query := checkouts.BuildSingleRentQuery(chi.URLParam(r, "rentID"), ActorFrom(r.Context()), s.clock())

	result, err := s.handlers.Checkouts.Handle(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}

	s.pages.render(w, http.StatusOK, templateCheckout, result.Rents[0])
}

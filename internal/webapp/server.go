// Package webapp serves the churn questionnaire over HTTP. Each request
// rebuilds controller state from the posted values, so entered data survives a
// failed attempt without any server-side session.
package webapp

import (
	"net/http"

	"github.com/telquery/churnform/pkg/form"
	"github.com/telquery/churnform/pkg/render"
	"github.com/telquery/churnform/pkg/schema"
)

// Server holds the immutable pieces shared across requests.
type Server struct {
	catalog  schema.Catalog
	client   form.Predictor
	renderer *render.Renderer
}

// New constructs a Server over the catalog and prediction client.
func New(catalog schema.Catalog, client form.Predictor) *Server {
	return &Server{
		catalog:  catalog.Clone(),
		client:   client,
		renderer: render.New(),
	}
}

// Handler wires the routes: the form page, the submission post, and a local
// liveness probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleForm)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		// A fresh GET is the reset path: every field empty, no errors, no
		// prior result.
		s.renderPage(w, http.StatusOK, render.Options{})
	case http.MethodPost:
		s.handleSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	controller := form.NewController(s.catalog)
	for _, field := range s.catalog {
		// SetValue only rejects unknown names, and the catalog is the source
		// of the loop.
		_ = controller.SetValue(field.Name, r.PostFormValue(field.Name))
	}

	result, err := controller.Submit(r.Context(), s.client)
	if err != nil {
		// Validation failures re-render with the entered data and the
		// per-field messages; nothing was sent upstream.
		s.renderPage(w, http.StatusUnprocessableEntity, render.Options{
			Values: controller.Values(),
			Errors: controller.Errors(),
		})
		return
	}

	s.renderPage(w, http.StatusOK, render.Options{
		Values: controller.Values(),
		Result: &result,
	})
}

func (s *Server) renderPage(w http.ResponseWriter, status int, opts render.Options) {
	page := s.renderer.Page(s.catalog, opts)
	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(page)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/irvingdinh/aurorus/internal/config"
	"github.com/irvingdinh/aurorus/internal/templates/pages"
	"github.com/irvingdinh/aurorus/internal/view"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config *config.Config
	logger *slog.Logger
}

// New creates a new Handlers instance.
func New(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		config: cfg,
		logger: logger,
	}
}

// render serves p as a full document. The document is buffered, so a render
// failure still produces a clean 500.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, p pages.Page) {
	templ.Handler(view.Component(p.Document()),
		templ.WithStatus(status),
		templ.WithErrorHandler(h.renderError),
	).ServeHTTP(w, r)
}

func (h *Handlers) renderError(r *http.Request, err error) http.Handler {
	h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})
}

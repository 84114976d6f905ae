package handlers

import (
	"net/http"

	"github.com/irvingdinh/aurorus/internal/templates/pages"
)

// Home handles the root path.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.LandingPage)
}

// NotFound renders the 404 page inside the site chrome.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, pages.NotFoundPage)
}

// Health reports liveness. There are no backing services to check.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

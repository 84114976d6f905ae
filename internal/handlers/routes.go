package handlers

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/irvingdinh/aurorus/internal/middleware"
)

// Routes builds the site router.
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))
	r.Use(chimiddleware.GetHead)

	// Static assets, including the profile picture
	r.Handle("/assets/*", h.assets())

	r.Get("/health", h.Health)
	r.Get("/", h.Home)

	r.NotFound(h.NotFound)

	return r
}

// assets serves files from the configured directory. Directories and
// missing files get the 404 page instead of the file server's plain text.
func (h *Handlers) assets() http.Handler {
	root := http.Dir(h.config.AssetsDir)
	files := http.StripPrefix("/assets/", http.FileServer(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || !isFile(root, strings.TrimPrefix(r.URL.Path, "/assets")) {
			h.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func isFile(root http.FileSystem, name string) bool {
	f, err := root.Open(path.Clean("/" + name))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a new HTTP router with all API endpoints. When ui is not
// nil its files are served for every other path. allowedOrigins lists the
// frontend origins that may call the API cross-origin.
func NewRouter(h *Handler, ui http.FileSystem, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(LoopbackOnly)
	r.Use(CORS(allowedOrigins))
	r.Use(JSONContentType)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/hosts", h.GetHosts)
		r.Post("/hosts", h.AddHost)
		r.Put("/hosts", h.SaveHosts)

		r.Get("/backups", h.ListBackups)
		r.Post("/backups", h.CreateBackup)
		r.Post("/backups/{name}/restore", h.RestoreBackup)

		r.Post("/editor", h.OpenEditor)

		r.Get("/check", h.Check)
		r.Get("/health", h.Health)
	})

	if ui != nil {
		r.Handle("/*", http.FileServer(ui))
	}

	return r
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/save/version", h.version)
		r.Get("/api/save/", h.download)
		r.Put("/api/save/", h.upload)
		r.Delete("/api/save/", h.del)
	})

	return router
}

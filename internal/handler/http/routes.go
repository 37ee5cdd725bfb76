package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// promhttp negotiates its own compression
	router.Get("/healthz", h.health)
	router.Handle("/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withSession)
		r.Use(h.withOptionalUser)

		r.Get("/", h.search)
		r.Get("/search", h.search)
		r.Get("/tabs/{trigger}", h.launchTabs)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

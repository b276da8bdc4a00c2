package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withRecover,
		h.withCORS(),
	)

	// unsupported methods on known paths are reported as unknown routes
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	router.Get("/health", h.health)

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	return router
}

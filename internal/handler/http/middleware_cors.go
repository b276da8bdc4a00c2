package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS lets the web UI call the API from another origin. Preflight
// requests are answered here and never reach the routes.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}

package http

import "net/http"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.HealthService.Health(r.Context()), http.StatusOK)
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

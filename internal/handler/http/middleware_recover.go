package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

var errPanicRecovered = errors.New("panic recovered")

// withRecover turns a panic in a handler into a 500 ErrorResponse. Aborted
// handlers (http.ErrAbortHandler) are re-panicked for net/http to handle.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			writeError(w, r, errPanicRecovered)
		}()

		next.ServeHTTP(w, r)
	})
}

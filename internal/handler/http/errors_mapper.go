package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

type errorMapping struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first errors.Is match wins.
// Anything unmatched is a 500 with a generic message.
var errorStatusMap = []struct {
	target error
	errorMapping
}{
	{ErrBodyTooLarge, errorMapping{http.StatusRequestEntityTooLarge, app.MsgRequestBodyTooLarge}},
	{ErrMalformedBody, errorMapping{http.StatusBadRequest, app.MsgInvalidJSONBody}},
	{service.ErrInvalidDataProvided, errorMapping{http.StatusBadRequest, app.MsgInvalidUserData}},
	{validators.ErrValidation, errorMapping{http.StatusBadRequest, app.MsgInvalidUserData}},
	{ErrInvalidUserID, errorMapping{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrNoUserWasFound, errorMapping{http.StatusNotFound, app.MsgUserNotFound}},
	{ErrRouteNotFound, errorMapping{http.StatusNotFound, app.MsgRouteNotFound}},
}

var internalError = errorMapping{http.StatusInternalServerError, app.MsgInternalServerError}

func mappingFromError(err error) errorMapping {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.errorMapping
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

// writeError answers with the ErrorResponse matching err. Validation
// failures carry their per-field details; nothing else of err is exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	m := mappingFromError(err)

	response := models.ErrorResponse{Error: m.message}

	var violations validators.ValidationErrors
	if errors.As(err, &violations) {
		response.Fields = violations.FieldErrors()
	}

	if m.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", m.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", m.status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, response, m.status); wErr != nil {
		log.Err(wErr).Msg("writing error response failed")
	}
}

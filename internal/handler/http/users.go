package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-chi/chi/v5"
)

// maxRequestBodyBytes caps JSON request bodies at 100 KiB.
const maxRequestBodyBytes = 100 << 10

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.CreateUserRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

// updateUser validates the body before looking the user up, so an invalid
// body for an unknown id is a 400.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var request models.UpdateUserRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

// decodeJSON reads a single JSON value of at most maxRequestBodyBytes into
// dst. An empty body decodes as an empty object.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))

	err := decoder.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		// trailing data after the object
		if err = decoder.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return nil
		}
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
	}

	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(s string) *string { return &s }

func invalid(violations ...validators.FieldViolation) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ValidationErrors(violations))
}

func decodeError(t *testing.T, body string) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestListUsers_Empty(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil)

	rr := tr.do(http.MethodGet, "/api/users", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListUsers_InOrder(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{
		{ID: 1, Name: "A", Email: "a@x.com"},
		{ID: 2, Name: "B", Email: "b@x.com"},
	}, nil)

	rr := tr.do(http.MethodGet, "/api/users/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"A","email":"a@x.com"},{"id":2,"name":"B","email":"b@x.com"}]`, rr.Body.String())
}

func TestListUsers_InternalErrorDoesNotLeak(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().ListUsers(gomock.Any()).Return(nil, fmt.Errorf("listing users failed: %w", store.ErrExecutingQuery))

	rr := tr.do(http.MethodGet, "/api/users", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
}

func TestListUsers_PanicRecovered(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().ListUsers(gomock.Any()).DoAndReturn(func(context.Context) ([]models.User, error) {
		panic("unexpected")
	})

	rr := tr.do(http.MethodGet, "/api/users", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rr.Body.String()).Error)
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().
		CreateUser(gomock.Any(), models.CreateUserRequest{Name: ptr("A"), Email: ptr("a@x.com")}).
		Return(models.User{ID: 1, Name: "A", Email: "a@x.com"}, nil)

	rr := tr.do(http.MethodPost, "/api/users", `{"name":"A","email":"a@x.com"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"A","email":"a@x.com"}`, rr.Body.String())
}

func TestCreateUser_ValidationFailure(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().
		CreateUser(gomock.Any(), models.CreateUserRequest{Email: ptr("a@x.com")}).
		Return(models.User{}, invalid(validators.FieldViolation{Field: validators.FieldName, Err: validators.ErrFieldRequired}))

	rr := tr.do(http.MethodPost, "/api/users", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeError(t, rr.Body.String())
	assert.Equal(t, "Invalid user data", resp.Error)
	assert.Equal(t, []models.FieldError{{Field: "name", Message: "is required"}}, resp.Fields)
}

func TestCreateUser_EmptyBodyIsEmptyObject(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().
		CreateUser(gomock.Any(), models.CreateUserRequest{}).
		Return(models.User{}, invalid(
			validators.FieldViolation{Field: validators.FieldName, Err: validators.ErrFieldRequired},
			validators.FieldViolation{Field: validators.FieldEmail, Err: validators.ErrFieldRequired},
		))

	rr := tr.do(http.MethodPost, "/api/users", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Len(t, decodeError(t, rr.Body.String()).Fields, 2)
}

func TestCreateUser_MalformedBodies(t *testing.T) {
	bodies := map[string]string{
		"invalid json":   "invalid json",
		"truncated":      `{"name":"A"`,
		"array":          `[]`,
		"wrong type":     `{"name":5,"email":"a@x.com"}`,
		"trailing data":  `{"name":"A","email":"a@x.com"} {}`,
		"trailing token": `{"name":"A","email":"a@x.com"}x`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			// no EXPECT: the service must not be reached
			tr := newTestRouter(t)

			rr := tr.do(http.MethodPost, "/api/users", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "Invalid JSON body", decodeError(t, rr.Body.String()).Error)
		})
	}
}

func TestCreateUser_BodyTooLarge(t *testing.T) {
	tr := newTestRouter(t)
	body := `{"name":"` + strings.Repeat("a", maxRequestBodyBytes) + `","email":"a@x.com"}`

	rr := tr.do(http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "Request body too large", decodeError(t, rr.Body.String()).Error)
}

// ─────────────────────────────────────────────
// get
// ─────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().GetUser(gomock.Any(), int64(42)).Return(models.User{ID: 42, Name: "A", Email: "a@x.com"}, nil)

	rr := tr.do(http.MethodGet, "/api/users/42", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":42,"name":"A","email":"a@x.com"}`, rr.Body.String())
}

func TestGetUser_NotFound(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().GetUser(gomock.Any(), int64(99999)).Return(models.User{}, fmt.Errorf("user search by id failed: %w", store.ErrNoUserWasFound))

	rr := tr.do(http.MethodGet, "/api/users/99999", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())
}

func TestGetUser_NonNumericIDIsNotFound(t *testing.T) {
	for _, id := range []string{"abc", "1.5", "12abc", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			tr := newTestRouter(t)

			rr := tr.do(http.MethodGet, "/api/users/"+id, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "User not found", decodeError(t, rr.Body.String()).Error)
		})
	}
}

// ─────────────────────────────────────────────
// update
// ─────────────────────────────────────────────

func TestUpdateUser_PartialUpdate(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().
		UpdateUser(gomock.Any(), int64(1), models.UpdateUserRequest{Name: ptr("B")}).
		Return(models.User{ID: 1, Name: "B", Email: "a@x.com"}, nil)

	rr := tr.do(http.MethodPut, "/api/users/1", `{"name":"B"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"B","email":"a@x.com"}`, rr.Body.String())
}

func TestUpdateUser_NotFound(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().
		UpdateUser(gomock.Any(), int64(99999), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	rr := tr.do(http.MethodPut, "/api/users/99999", `{"name":"Updated"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateUser_EmptySuppliedField(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().
		UpdateUser(gomock.Any(), int64(1), models.UpdateUserRequest{Email: ptr("")}).
		Return(models.User{}, invalid(validators.FieldViolation{Field: validators.FieldEmail, Err: validators.ErrFieldEmpty}))

	rr := tr.do(http.MethodPut, "/api/users/1", `{"email":""}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []models.FieldError{{Field: "email", Message: "must not be empty"}}, decodeError(t, rr.Body.String()).Fields)
}

func TestUpdateUser_MalformedBodyBeforeIDCheck(t *testing.T) {
	tr := newTestRouter(t)

	rr := tr.do(http.MethodPut, "/api/users/abc", `{bad`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// delete
// ─────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(nil)

	rr := tr.do(http.MethodDelete, "/api/users/3", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteUser_NotFound(t *testing.T) {
	tr := newTestRouter(t)
	tr.users.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(fmt.Errorf("user deletion failed: %w", store.ErrNoUserWasFound))

	rr := tr.do(http.MethodDelete, "/api/users/3", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// error mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", invalid(), http.StatusBadRequest},
		{"bare validation errors", validators.ValidationErrors{{Field: "name", Err: validators.ErrFieldEmpty}}, http.StatusBadRequest},
		{"malformed", fmt.Errorf("%w: x", ErrMalformedBody), http.StatusBadRequest},
		{"too large", ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"not found", fmt.Errorf("wrapped: %w", store.ErrNoUserWasFound), http.StatusNotFound},
		{"bad id", ErrInvalidUserID, http.StatusNotFound},
		{"route", ErrRouteNotFound, http.StatusNotFound},
		{"sql", store.ErrScanningRow, http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

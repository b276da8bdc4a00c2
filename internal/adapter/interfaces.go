// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the users API.
//
// [UsersAPI] hides the HTTP details from callers. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors in errors.go so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// UsersAPI is a client of the users API.
type UsersAPI interface {
	// Health fetches GET /health.
	Health(ctx context.Context) (models.Health, error)

	// ListUsers fetches every user in creation order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser creates a user and returns it with its assigned id.
	// Returns [ErrBadRequest] (wrapped) when a field is missing or empty.
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)

	// GetUser fetches a single user. Returns [ErrNotFound] (wrapped) for an
	// unknown id.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// UpdateUser changes the supplied fields of a user and returns the
	// result.
	UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, id int64) error
}

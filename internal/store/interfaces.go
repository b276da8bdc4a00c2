package store

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository owns the ordered collection of users.
//
// Every method is applied to completion before the next one starts, so
// callers never observe a half-applied mutation. Unknown ids are reported
// as [ErrNoUserWasFound].
type UserRepository interface {
	// ListUsers returns all users in creation order. The slice is never nil.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser assigns the next id to user, appends it and returns the
	// stored record. The ID of the argument is ignored.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUser merges the non-nil fields of update into the stored user
	// and returns the result.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, id int64) error
}

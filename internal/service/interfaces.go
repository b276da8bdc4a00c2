package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService implements the operations of the Users resource.
//
// Errors wrap the sentinels of this package, the store package
// (store.ErrNoUserWasFound) and the validators package
// (validators.ErrValidation) so the transport can map them with errors.Is.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// HealthService reports the liveness of the process.
type HealthService interface {
	Health(ctx context.Context) models.Health
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

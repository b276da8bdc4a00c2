package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

// UserValidationService validates request payloads before handing them to
// the wrapped UserService. A rejected payload never reaches the inner
// service, so nothing is mutated.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.User{}, err
	}

	return v.inner.CreateUser(ctx, request)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateUser(ctx, id, request)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

func (v *UserValidationService) validate(ctx context.Context, request any) error {
	err := v.validator.Validate(ctx, request)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrValidation):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return fmt.Errorf("error during user validation: %w", err)
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

// userService is the concrete implementation of UserService.
// It expects already validated input; see userValidationService.
type userService struct {
	// userRepository owns the collection; existence checks and mutations
	// happen there as one step.
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService backed by userRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every user in creation order. An empty collection is
// an empty, non-nil slice.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// CreateUser stores a new user and returns it with its assigned id.
func (s *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := s.userRepository.CreateUser(ctx, request.ToUser())
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Debug().Int64("id", created.ID).Msg("user created")

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUser merges the supplied fields into the stored user. Nothing is
// written when the user does not exist.
func (s *userService) UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := s.userRepository.UpdateUser(ctx, id, request.ToUpdate())
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

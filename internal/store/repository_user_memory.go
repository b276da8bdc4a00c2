package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// memoryUserRepository is the default [UserRepository]: an ordered slice
// with linear lookup by id.
//
// mu serializes every operation. lastID is the highest id ever issued and
// only grows, so deleting the newest user does not free its id.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  []models.User
	lastID int64

	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make([]models.User, 0),
		logger: logger,
	}
}

func (r *memoryUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.users), nil
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	user.ID = r.lastID
	r.users = append(r.users, user)

	logger.FromContext(ctx).Debug().Int64("id", user.ID).Msg("user stored")

	return user, nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.users[i], nil
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	r.users[i] = update.Apply(r.users[i])

	return r.users[i], nil
}

func (r *memoryUserRepository) DeleteUser(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNoUserWasFound
	}

	r.users = slices.Delete(r.users, i, i+1)

	logger.FromContext(ctx).Debug().Int64("id", id).Msg("user removed")

	return nil
}

// indexOf returns the position of the user with the given id or -1.
// Callers must hold mu.
func (r *memoryUserRepository) indexOf(id int64) int {
	return slices.IndexFunc(r.users, func(u models.User) bool {
		return u.ID == id
	})
}

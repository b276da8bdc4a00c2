package service

import (
	"time"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
)

type Services struct {
	UserService   UserService
	HealthService HealthService
}

// NewServices wires the service layer on top of storages. startedAt is the
// process start time the health report measures uptime from.
func NewServices(storages *store.Storages, startedAt time.Time, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, logger),
	)

	return &Services{
		UserService:   userService,
		HealthService: NewHealthService(startedAt),
	}
}

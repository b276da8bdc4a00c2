package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-api/models"
)

type healthService struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthService returns a HealthService measuring uptime from startedAt.
func NewHealthService(startedAt time.Time) HealthService {
	return &healthService{
		startedAt: startedAt,
		now:       time.Now,
	}
}

// Health always reports "ok": if the process can answer, it is healthy.
// The timestamp is UTC with millisecond precision.
func (s *healthService) Health(_ context.Context) models.Health {
	now := s.now()

	return models.Health{
		Status:    models.HealthStatusOK,
		Timestamp: now.UTC().Truncate(time.Millisecond),
		Uptime:    now.Sub(s.startedAt).Seconds(),
	}
}

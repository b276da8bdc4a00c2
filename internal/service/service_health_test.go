package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
)

func TestHealthService_Health(t *testing.T) {
	startedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now := startedAt.Add(90*time.Second + 1500*time.Microsecond)

	svc := &healthService{
		startedAt: startedAt,
		now:       func() time.Time { return now },
	}

	got := svc.Health(context.Background())

	assert.Equal(t, models.HealthStatusOK, got.Status)
	assert.Equal(t, startedAt.Add(90*time.Second+time.Millisecond), got.Timestamp)
	assert.InDelta(t, 90.0015, got.Uptime, 1e-9)
}

func TestHealthService_TimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	svc := &healthService{
		startedAt: time.Now(),
		now:       func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, loc) },
	}

	got := svc.Health(context.Background())

	assert.Equal(t, time.UTC, got.Timestamp.Location())
	assert.Equal(t, 9, got.Timestamp.Hour())
}

func TestNewHealthService_UptimeGrows(t *testing.T) {
	svc := NewHealthService(time.Now().Add(-time.Minute))

	got := svc.Health(context.Background())

	assert.GreaterOrEqual(t, got.Uptime, 60.0)
}

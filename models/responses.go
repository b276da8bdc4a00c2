package models

import (
	"encoding/json"
	"time"
)

// Health is the body of GET /health.
type Health struct {
	// Status is always "ok" while the process serves requests.
	Status string `json:"status"`

	// Timestamp is the moment the report was produced.
	Timestamp time.Time `json:"timestamp"`

	// Uptime is the number of seconds since the process started.
	Uptime float64 `json:"uptime"`
}

// HealthStatusOK is the only status the health endpoint reports.
const HealthStatusOK = "ok"

// HealthTimestampLayout always renders milliseconds, e.g.
// 2026-01-02T03:04:05.000Z.
const HealthTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// MarshalJSON renders Timestamp in UTC with HealthTimestampLayout.
func (h Health) MarshalJSON() ([]byte, error) {
	type plain Health
	return json.Marshal(struct {
		plain
		Timestamp string `json:"timestamp"`
	}{
		plain:     plain(h),
		Timestamp: h.Timestamp.UTC().Format(HealthTimestampLayout),
	})
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`

	// Fields lists per-field validation failures. Only set for 400 responses
	// caused by an invalid payload.
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes why a single request field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

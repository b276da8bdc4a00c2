package validators

import (
	"strings"

	"github.com/MKhiriev/go-users-api/models"
)

// FieldViolation is a single rejected field.
type FieldViolation struct {
	Field string
	Err   error
}

// ValidationErrors is the failed outcome of a validation: every field that
// was rejected, in the order the fields were checked.
//
// It matches [ErrValidation] with errors.Is and unwraps to the individual
// field errors, so errors.Is(err, ErrFieldRequired) works as well.
type ValidationErrors []FieldViolation

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.Field+" "+violation.Err.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes the per-field errors.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, violation := range v {
		errs = append(errs, violation.Err)
	}
	return errs
}

// FieldErrors converts the violations to their wire representation.
func (v ValidationErrors) FieldErrors() []models.FieldError {
	fields := make([]models.FieldError, 0, len(v))
	for _, violation := range v {
		fields = append(fields, models.FieldError{
			Field:   violation.Field,
			Message: violation.Err.Error(),
		})
	}
	return fields
}

// orNil returns nil for an empty set so callers can return it directly.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

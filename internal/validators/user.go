package validators

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON names reported back to the client.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// UserValidator implements the Validator interface for the user request
// models: CreateUserRequest and UpdateUserRequest.
//
// Email is only checked for presence. Its format is never inspected.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model, and
// ErrUnknownField if fields names something other than FieldName/FieldEmail.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, value, fields...)
	case *models.CreateUserRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateUserRequest(ctx, *value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUserRequest(ctx, value, fields...)
	case *models.UpdateUserRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUpdateUserRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateUserRequest requires every checked field to be present and
// non-empty.
//
// Default validated fields: FieldName, FieldEmail.
func (v *UserValidator) validateCreateUserRequest(_ context.Context, request models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	var violations ValidationErrors
	for _, f := range fields {
		var value *string
		switch f {
		case FieldName:
			value = request.Name
		case FieldEmail:
			value = request.Email
		default:
			return ErrUnknownField
		}

		switch {
		case value == nil:
			violations = append(violations, FieldViolation{Field: f, Err: ErrFieldRequired})
		case *value == "":
			violations = append(violations, FieldViolation{Field: f, Err: ErrFieldEmpty})
		}
	}

	return violations.orNil()
}

// validateUpdateUserRequest checks only the fields that were supplied:
// an absent field keeps its stored value, a supplied one must be non-empty.
// A request without any field is valid and changes nothing.
//
// Default validated fields: FieldName, FieldEmail.
func (v *UserValidator) validateUpdateUserRequest(_ context.Context, request models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	var violations ValidationErrors
	for _, f := range fields {
		var value *string
		switch f {
		case FieldName:
			value = request.Name
		case FieldEmail:
			value = request.Email
		default:
			return ErrUnknownField
		}

		if value != nil && *value == "" {
			violations = append(violations, FieldViolation{Field: f, Err: ErrFieldEmpty})
		}
	}

	return violations.orNil()
}

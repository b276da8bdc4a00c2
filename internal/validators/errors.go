package validators

import "errors"

var (
	// ErrValidation matches every error produced for an unusable payload.
	// Callers map it to a client error.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFieldRequired = errors.New("is required")
	ErrFieldEmpty    = errors.New("must not be empty")
)

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of a request
	// payload.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads at the service boundary,
// before any domain logic runs.
//
// A Validator either accepts a value (nil error) or rejects it with a
// [ValidationErrors] listing every offending field. Errors that are not
// about the payload itself, such as an unsupported type, are returned as
// plain sentinels and do not match [ErrValidation].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

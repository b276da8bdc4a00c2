// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport-level errors produced while reading a request. They are mapped
// to status codes together with the service errors in errorStatusMap.
var (
	// ErrMalformedBody is returned when the request body is not valid JSON
	// or does not have the shape of the expected object.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is returned when the request body exceeds
	// maxRequestBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidUserID is returned when the {id} path segment is not a
	// decimal integer. Such an id cannot name any user.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrRouteNotFound is reported for unmatched paths and methods.
	ErrRouteNotFound = errors.New("route not found")
)

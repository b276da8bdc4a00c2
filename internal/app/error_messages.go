// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// users API handlers and middleware.
//
// All Msg* constants are the human-readable strings written into the "error"
// field of JSON error responses. Clients may match on them.
package app

const (
	// MsgInvalidUserData is returned when a create or update payload fails
	// validation. The response also lists the offending fields.
	MsgInvalidUserData = "Invalid user data"

	// MsgInvalidJSONBody is returned when the request body is not a single
	// JSON object.
	MsgInvalidJSONBody = "Invalid JSON body"

	// MsgRequestBodyTooLarge is returned when the request body exceeds the
	// accepted size.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgUserNotFound is returned when no user has the requested id,
	// including ids that are not numbers.
	MsgUserNotFound = "User not found"

	// MsgRouteNotFound is returned for any path or method without a handler.
	MsgRouteNotFound = "Route not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)

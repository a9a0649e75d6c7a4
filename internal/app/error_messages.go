// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into HTTP error
// responses of the mission planning API.
//
// Keeping them in one place keeps the wording consistent between handlers
// and middleware.
package app

const (
	// MsgInvalidDataProvided is returned when a decoded request fails
	// validation (e.g. a too short username).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidID is returned when the {id} path segment is not an integer.
	MsgInvalidID = "invalid id"

	// MsgInvalidLoginPassword is returned for an unknown username and for
	// a wrong password alike.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgAuthenticationRequired is returned when a protected route is
	// called without a valid bearer token.
	MsgAuthenticationRequired = "authentication required"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the caller lacks the role a route
	// requires.
	MsgAccessDenied = "access denied"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the username is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgTokenCreationFailed is returned when a session token cannot be
	// signed after a successful login or registration.
	MsgTokenCreationFailed = "token creation failed"

	// MsgDatabaseUnavailable is returned when the database cannot be reached.
	MsgDatabaseUnavailable = "database is unavailable"

	// MsgInternalServerError is returned for any other server-side failure.
	MsgInternalServerError = "internal server error"
)

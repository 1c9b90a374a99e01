// Package common defines shared constants and sentinel errors used across
// the portal client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors (the request never produced a usable response).
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenExpired     = errors.New("token expired")

	// Generic backend errors.
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

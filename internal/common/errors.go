// Package common contains sentinel errors shared across the tracker's
// services, repositories, and HTTP layer.
package common

import "errors"

var (

	// repository specific errors
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// auth-specific errors
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidToken  = errors.New("invalid token")
	ErrUsernameTaken = errors.New("username already taken")

	// request-scoped errors
	ErrValidation       = errors.New("validation error")
	ErrMalformedRequest = errors.New("malformed request")

	ErrInternal = errors.New("internal error")
)

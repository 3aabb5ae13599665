package common

import "errors"

// Sentinel errors shared by the API layer and its consumers. Callers match
// them with errors.Is.
var (
	// ErrUnauthorized covers 401 responses: the credential is missing,
	// invalid, or expired as far as the server is concerned.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden covers 403 responses: the actor is known but the role
	// does not permit the operation.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound = errors.New("not found")

	// ErrValidation covers 400/409/422 responses carrying a server-supplied
	// message intended for the user.
	ErrValidation = errors.New("validation error")

	// ErrUnavailable covers 5xx responses and transport failures.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidToken marks a token whose payload cannot be decoded locally.
	ErrInvalidToken = errors.New("invalid token")
)

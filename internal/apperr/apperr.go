package apperr

import "errors"

// Error kinds used across the service layer. Services wrap these with
// fmt.Errorf("...: %w", ...); handlers match with errors.Is and map them
// to HTTP responses.
var (
	// ErrValidation marks bad input shape or values.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a protected operation called without a
	// valid identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnauthenticated marks a failed login. The message never says
	// whether the username or the password was wrong.
	ErrUnauthenticated = errors.New("invalid credentials")
	// ErrStorage marks a database or file write failure.
	ErrStorage = errors.New("storage failure")
)

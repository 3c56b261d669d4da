package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status. Collaborator failures
// that match none of these are logged and reported as a generic internal
// error; their text never reaches the client.
var (
	// ErrEmailTaken is the users.email unique-constraint violation, surfaced
	// distinctly so registration can answer "email already registered"
	// instead of a generic internal error.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login does not leak which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound = errors.New("user not found")
	ErrRideNotFound = errors.New("ride not found")

	// ErrInvalidToken is any bearer-token rejection: malformed structure, bad
	// signature, or elapsed expiry. The precise reason is logged, not exposed.
	ErrInvalidToken = errors.New("invalid or expired token")
)

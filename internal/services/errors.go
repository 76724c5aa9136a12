package services

import "errors"

// Sentinel errors returned by the services. Handlers translate them into
// HTTP status codes with errors.Is.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken means the requested username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so a caller cannot enumerate registered usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken means the presented bearer token is unknown or its
	// account has been deactivated.
	ErrInvalidToken = errors.New("invalid token")
)

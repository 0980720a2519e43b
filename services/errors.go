package services

import "errors"

// Failure taxonomy for the storefront core. Handlers translate these into
// HTTP statuses; nothing here is fatal to the process.
var (
	// ErrEmailTaken is returned when a registration collides with an
	// existing account's email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when a registration or profile update
	// collides with an existing username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on any login mismatch. It is the
	// same error whether the email is unknown or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login fails for any reason.
	// Whether the email was unknown or the password wrong is never distinguished.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

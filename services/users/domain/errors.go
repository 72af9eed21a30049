package domain

import "errors"

// Sentinel errors for the users domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates a user with the same id already exists.
	ErrUserExists = errors.New("user already exists")

	// ErrEmailTaken indicates another user is already registered with this email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPhoneTaken indicates another user is already registered with this phone.
	ErrPhoneTaken = errors.New("phone already registered")
)

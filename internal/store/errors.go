package store

import "errors"

var (
	// ErrDuplicateEmail is returned by CreateUser when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by AuthenticateUser for both an unknown
	// email and a wrong password, so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned by lookups that miss.
	ErrNotFound = errors.New("record not found")
)

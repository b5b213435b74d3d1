package services

import "errors"

var (
	// ErrNotFound is returned when an operation targets a document that
	// does not exist, or that the caller is not allowed to see.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the admin credential does not match.
	ErrUnauthorized = errors.New("unauthorized")
)

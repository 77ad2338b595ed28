package core

import "errors"

var (
	// ErrMissingValue is the kind of error for a required value that was not given.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidValue is the kind of error for a value that breaks a domain rule.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNotFound is returned when the addressed entity does not exist (anymore).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when an entity with the same identity or unique key exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrAccessDenied is returned when the actor lacks the permission for an operation.
	ErrAccessDenied = errors.New("access denied")
)

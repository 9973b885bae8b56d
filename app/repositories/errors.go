package repositories

import "errors"

var (
	// ErrNotFound indicates the requested account or product does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a username is already taken in a registry.
	ErrAlreadyExists = errors.New("already exists")
)

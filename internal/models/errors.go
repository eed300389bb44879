package models

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by stores on a unique constraint violation.
	ErrDuplicate = errors.New("already exists")
)

package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrWalkNotFound indicates that no walk matched the delete request
	ErrWalkNotFound = errors.New("walk not found")

	// ErrDuplicateWalk indicates that walk with the same date, distance and time already exists
	ErrDuplicateWalk = errors.New("walk already exists")
)

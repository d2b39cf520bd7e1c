package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrBookNotFound indicates that the book does not exist or is deleted
	ErrBookNotFound = errors.New("book not found")

	// ErrBillNotFound indicates that the bill does not exist
	ErrBillNotFound = errors.New("bill not found")

	// ErrImageNotFound indicates that the image does not exist
	ErrImageNotFound = errors.New("image not found")
)

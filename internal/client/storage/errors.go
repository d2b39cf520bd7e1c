package storage

import "errors"

// Common client storage errors
var (
	// ErrBookNotFound indicates that book was not found
	ErrBookNotFound = errors.New("book not found")

	// ErrBillNotFound indicates that bill was not found
	ErrBillNotFound = errors.New("bill not found")

	// ErrImageNotFound indicates that image was not found
	ErrImageNotFound = errors.New("image not found")

	// ErrSessionNotFound indicates that no session data exists (not logged in)
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

package kvstore

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a key does not exist in the store.
	ErrNotFound = errors.New("kvstore: key not found")

	// ErrReadFailed is returned when the backing medium cannot be read.
	ErrReadFailed = errors.New("kvstore: read failed")

	// ErrWriteFailed is returned when the backing medium cannot be written.
	ErrWriteFailed = errors.New("kvstore: write failed")
)

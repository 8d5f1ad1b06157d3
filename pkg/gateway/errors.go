package gateway

import "errors"

// Gateway errors.
var (
	// ErrRequestFailed is returned when the backend answers with a
	// non-success status. The joined error carries the backend's
	// human-readable description.
	ErrRequestFailed = errors.New("gateway: request failed")

	// ErrUnauthorized is returned on a 401 response.
	ErrUnauthorized = errors.New("gateway: unauthorized")

	// ErrNotFound is returned on a 404 response.
	ErrNotFound = errors.New("gateway: not found")

	// ErrDecodeFailed is returned when a response body cannot be decoded.
	ErrDecodeFailed = errors.New("gateway: failed to decode response")
)

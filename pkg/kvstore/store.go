package kvstore

import "context"

// Store is a persistent string key-value store.
//
// Implementations must be safe for concurrent use. Writes are expected to be
// write-through: when Set or Remove returns, the mutation has been handed to
// the backing medium.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any existing value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

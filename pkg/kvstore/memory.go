package kvstore

import (
	"context"
	"sync"
)

// Memory is an in-memory Store. Values live for the lifetime of the process,
// which degrades session and cart persistence to per-run scope — the
// fail-safe mode the stores fall back to anyway when durable storage is
// unavailable.
type Memory struct {
	items map[string]string
	mu    sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

// Get retrieves the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

// Remove deletes key.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

var _ Store = (*Memory)(nil)

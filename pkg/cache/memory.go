package cache

import (
	"context"
	"sync"
	"time"
)

type memEntry[V any] struct {
	expiresAt time.Time
	value     V
}

func (e memEntry[V]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Memory is an in-memory cache with TTL expiration. Expired entries are
// dropped lazily on access and swept by a background janitor.
type Memory[V any] struct {
	items map[string]memEntry[V]
	opts  *memoryOptions
	done  chan struct{}
	mu    sync.Mutex
	once  sync.Once
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	c := cache.NewMemory[[]catalog.Product](
//	    cache.WithDefaultTTL(5 * time.Minute),
//	    cache.WithCleanupInterval(time.Minute),
//	)
//	defer c.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items: make(map[string]memEntry[V]),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves a value by key.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	e, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	if e.expired(time.Now()) {
		delete(m.items, key)
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Set stores a value. A zero TTL uses the configured default.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.opts.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return ErrClosed
	default:
	}

	m.items[key] = memEntry[V]{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Delete removes a key.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

// Close stops the janitor. Close is idempotent.
func (m *Memory[V]) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}

func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Memory[V]) sweep() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, e := range m.items {
		if e.expired(now) {
			delete(m.items, key)
		}
	}
}

var _ Cache[any] = (*Memory[any])(nil)

package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"github.com/shopkit/storefront/pkg/kvstore"
)

// itemsKey is the persistence key in the key-value store.
const itemsKey = "cart:items"

// Store is the shopping cart. All operations are synchronous; mutations are
// ordered by call order under an internal mutex and written through to the
// key-value store before returning.
type Store struct {
	kv  kvstore.Store
	log *slog.Logger

	mu    sync.Mutex
	items []Item
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates an empty cart. Call Restore once at startup to hydrate from
// persisted storage.
func New(kv kvstore.Store, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore hydrates the cart from persisted storage. A missing or malformed
// value yields an empty cart; Restore never fails. Persisted lines may have
// been tampered with or written by an older version, so hydration enforces
// the same rules as the mutators: lines with a quantity below 1 are dropped
// and duplicate product IDs are merged into the first occurrence.
func (s *Store) Restore(ctx context.Context) {
	raw, err := s.kv.Get(ctx, itemsKey)
	if err != nil {
		return
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WarnContext(ctx, "discarding malformed persisted cart", slog.Any("error", err))
		return
	}

	clean := make([]Item, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		if i, ok := index[it.ProductID]; ok {
			clean[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(clean)
		clean = append(clean, it)
	}

	s.mu.Lock()
	s.items = clean
	s.mu.Unlock()
}

// AddItem adds quantity units of product to the cart. If a line for the
// product already exists its quantity is incremented (merge semantics, never
// a duplicate row). A quantity below 1 is coerced to 1.
func (s *Store) AddItem(ctx context.Context, product Product, quantity int) Snapshot {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Item{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	s.persistLocked(ctx)
	return s.snapshotLocked()
}

// UpdateQuantity sets the quantity of the line for productID. The raw value
// comes straight from form input: anything that does not parse to an integer
// of at least 1 removes the line entirely. A missing product ID is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity string) Snapshot {
	qty := parseQuantity(quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.items {
		if s.items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.snapshotLocked()
	}

	if qty < 1 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	} else {
		s.items[idx].Quantity = qty
	}

	s.persistLocked(ctx)
	return s.snapshotLocked()
}

// parseQuantity truncates raw form input to an integer quantity. Anything
// unparsable, NaN, fractional below 1, or beyond the int32 range yields 0,
// which callers treat as removal.
func parseQuantity(raw string) int {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// RemoveItem removes the line for productID; absent IDs are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			break
		}
	}
	return s.snapshotLocked()
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked(ctx)
	return s.snapshotLocked()
}

// Snapshot returns a copy of the items with totals recomputed from them.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked copies items and derives totals. Caller must hold the mutex.
func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Items: make([]Item, len(s.items))}
	copy(snap.Items, s.items)

	for _, it := range s.items {
		snap.TotalItems += it.Quantity
		snap.Subtotal += it.LineTotal()
	}
	return snap
}

// persistLocked serializes the item list and writes it through to the
// key-value store. Failures are logged and swallowed. Caller must hold the
// mutex.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.WarnContext(ctx, "failed to encode cart", slog.Any("error", err))
		return
	}
	if err := s.kv.Set(ctx, itemsKey, string(data)); err != nil {
		s.log.WarnContext(ctx, "failed to persist cart", slog.Any("error", err))
	}
}

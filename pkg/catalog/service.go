package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopkit/storefront/pkg/cache"
)

// Cache keys.
const (
	productsKey   = "products"
	categoriesKey = "categories"
)

// Source is the remote catalog backend.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, id int64) (Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

// Service serves catalog reads through a TTL cache. Concurrent cache misses
// for the same key hit the backend once.
type Service struct {
	src        Source
	lists      cache.Cache[[]Product]
	products   cache.Cache[Product]
	categories cache.Cache[[]Category]
	ttl        time.Duration
	log        *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithTTL sets how long catalog reads are cached. Default: 5 minutes.
func WithTTL(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCaches swaps the default in-memory caches for shared ones
// (e.g. Redis-backed from pkg/cache).
func WithCaches(lists cache.Cache[[]Product], products cache.Cache[Product], categories cache.Cache[[]Category]) ServiceOption {
	return func(s *Service) {
		s.lists = lists
		s.products = products
		s.categories = categories
	}
}

// NewService creates a cached catalog service over src.
func NewService(src Source, opts ...ServiceOption) *Service {
	s := &Service{
		src: src,
		ttl: 5 * time.Minute,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.lists == nil {
		s.lists = cache.NewMemory[[]Product]()
	}
	if s.products == nil {
		s.products = cache.NewMemory[Product]()
	}
	if s.categories == nil {
		s.categories = cache.NewMemory[[]Category]()
	}

	return s
}

// Products returns the full product list, cached.
func (s *Service) Products(ctx context.Context) ([]Product, error) {
	return cache.GetOrSet(ctx, s.lists, productsKey, s.ttl, s.src.Products)
}

// Product returns a single product, cached per ID.
func (s *Service) Product(ctx context.Context, id int64) (Product, error) {
	key := fmt.Sprintf("product:%d", id)
	return cache.GetOrSet(ctx, s.products, key, s.ttl, func(ctx context.Context) (Product, error) {
		return s.src.Product(ctx, id)
	})
}

// Categories returns all categories, cached.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return cache.GetOrSet(ctx, s.categories, categoriesKey, s.ttl, s.src.Categories)
}

// Invalidate drops the cached product list and categories, forcing the next
// read to hit the backend. Called after admin mutations.
func (s *Service) Invalidate(ctx context.Context) {
	_ = s.lists.Delete(ctx, productsKey)
	_ = s.categories.Delete(ctx, categoriesKey)
}

// Warm pre-populates the product and category caches. Used by periodic
// cache warmers; failures are logged, not returned.
func (s *Service) Warm(ctx context.Context) {
	if _, err := s.Products(ctx); err != nil {
		s.log.WarnContext(ctx, "catalog warm: products", slog.Any("error", err))
	}
	if _, err := s.Categories(ctx); err != nil {
		s.log.WarnContext(ctx, "catalog warm: categories", slog.Any("error", err))
	}
}

// Close releases the underlying caches.
func (s *Service) Close() error {
	_ = s.lists.Close()
	_ = s.products.Close()
	return s.categories.Close()
}

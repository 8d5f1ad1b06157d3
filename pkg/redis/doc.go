// Package redis opens go-redis clients with retry and pool tuning. It backs
// the shared-deployment variants of pkg/kvstore and pkg/cache.
package redis

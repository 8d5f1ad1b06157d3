// Package cache provides a generic TTL cache with in-memory and Redis
// backends, used to keep catalog reads off the backend on every render.
//
// Both backends implement the same [Cache] interface, so the in-memory
// variant serves development and tests while Redis serves shared
// deployments. The standalone [GetOrSet] helper deduplicates concurrent
// misses with singleflight.
package cache

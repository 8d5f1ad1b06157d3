// Package catalog provides read access to the product catalog with
// client-side caching.
//
// The [Source] interface is the remote backend (implemented by pkg/gateway);
// [Service] layers a TTL cache with singleflight miss deduplication on top,
// so repeated renders do not hammer the backend. Product descriptions arrive
// as markdown and are rendered and sanitized before display.
package catalog

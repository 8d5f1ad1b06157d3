// Package cart owns the client-side shopping cart: line items keyed by
// product ID, quantity merge semantics, and derived totals.
//
// The store is synchronous and makes no network calls. Every mutation is
// written through to the configured key-value store before the call returns;
// totals are recomputed from the current items on every read, never cached.
// Persistence failures degrade the cart to per-run scope — they are logged
// and swallowed, never surfaced to the shopper.
package cart

// Package kvstore provides a small persistent key-value store abstraction
// used for client-side state (session token, serialized cart).
//
// The [Store] interface mirrors browser-style storage: string keys, string
// values, explicit removal. Three backends are provided:
//
//   - [Memory] — mutex-guarded map, for tests and ephemeral sessions
//   - [File] — a single JSON file, written through on every mutation
//   - [Redis] — a Redis hash of namespaced keys for shared deployments
//
// All backends return [ErrNotFound] for absent keys so callers can treat
// "missing" uniformly with errors.Is.
package kvstore

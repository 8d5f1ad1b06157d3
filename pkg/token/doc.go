// Package token decodes bearer tokens on the client side.
//
// The storefront never validates token signatures — that is the backend's
// job. It only needs the expiry claim to decide whether a persisted token is
// still worth presenting. The [Codec] interface isolates that capability so
// any JWT-compatible decoder satisfies it.
package token

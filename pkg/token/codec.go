package token

import (
	"errors"
	"time"
)

// ErrMalformedToken is returned when a token cannot be decoded.
// Callers treat a malformed token the same as an absent one.
var ErrMalformedToken = errors.New("token: malformed token")

// Claims holds the decoded fields the storefront cares about.
type Claims struct {
	ExpiresAt time.Time // zero value = no expiry claim present
	Subject   string
}

// Expired reports whether the claims have passed their expiry at the given
// instant. Claims without an expiry never expire.
func (c Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}

// Codec decodes an opaque bearer token into Claims.
type Codec interface {
	// Decode parses the token. Returns ErrMalformedToken if the token
	// cannot be parsed.
	Decode(token string) (Claims, error)
}

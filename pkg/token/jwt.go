package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWT decodes JWT bearer tokens without verifying the signature. The client
// holds no signing key; it reads the exp claim to drop stale tokens early
// instead of presenting them to the backend.
type JWT struct {
	parser *jwt.Parser
}

// NewJWT creates a JWT codec.
func NewJWT() *JWT {
	return &JWT{parser: jwt.NewParser()}
}

// Decode parses the token and extracts expiry and subject claims.
func (j *JWT) Decode(token string) (Claims, error) {
	var claims jwt.RegisteredClaims

	if _, _, err := j.parser.ParseUnverified(token, &claims); err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}

	out := Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

var _ Codec = (*JWT)(nil)

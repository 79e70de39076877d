package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// HS256Signer mints test tokens with a symmetric shared secret. It exists
// for the test-auth endpoint and for tests; production tokens are always
// provider-issued.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates a signer for the given shared secret.
func NewSignerHS256(secret string) *HS256Signer {
	return &HS256Signer{secret: []byte(secret)}
}

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

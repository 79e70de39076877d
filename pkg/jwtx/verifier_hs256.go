package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Verifier validates locally-minted test tokens using a symmetric
// shared secret. It is only wired up when test auth is enabled, and a failure
// here is final: test tokens never get a second chance against the provider
// path, so they can't be laundered into provider-trust tokens.
type HS256Verifier struct {
	secret []byte
}

// NewVerifierHS256 creates a test-mode verifier for the given shared secret.
func NewVerifierHS256(secret string) *HS256Verifier {
	return &HS256Verifier{secret: []byte(secret)}
}

// Verify validates the token and returns its parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

package jwtx

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// KeySource resolves a kid to an RSA public key. Implemented by KeySet (for
// tests) and RemoteKeySet (the provider-backed cache).
type KeySource interface {
	Get(kid string) (*rsa.PublicKey, error)
}

// RS256Verifier validates provider-issued JWTs signed using RS256, addressed
// by the kid header against a KeySource.
type RS256Verifier struct {
	keys   KeySource
	issuer string
	aud    []string
}

// NewVerifierRS256 creates a provider-mode verifier. The issuer and audience
// are enforced on every token.
func NewVerifierRS256(keys KeySource, issuer string, aud []string) *RS256Verifier {
	return &RS256Verifier{keys: keys, issuer: issuer, aud: aud}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *RS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		// Need the kid to know which key to use
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrMissingKID
		}

		pub, err := v.keys.Get(kid)
		if err != nil {
			return nil, err
		}
		return pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingKID),
			errors.Is(err, ErrUnknownKID),
			errors.Is(err, ErrJWKSUnavailable):
			return Claims{}, err
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	// Now check all the claim requirements
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.aud); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

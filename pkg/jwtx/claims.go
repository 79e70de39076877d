package jwtx

import (
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims this service cares about. Provider-issued
// tokens carry a lot more; we only read what identity resolution needs.
type Claims struct {
	jwt.RegisteredClaims

	// Email as asserted by the identity provider (or embedded in test tokens).
	Email string `json:"email,omitempty"`
}

// NewTestClaims builds the claims for a locally-minted test token.
func NewTestClaims(subject, email string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateSubject ensures the sub claim is present and non-empty.
func (c *Claims) ValidateSubject() error {
	if strings.TrimSpace(c.Subject) == "" {
		return ErrMissingSubject
	}
	return nil
}

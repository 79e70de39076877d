package service

import (
	"context"
	"time"

	"github.com/tasche-dev/tasche/internal/api/domain"
	"github.com/tasche-dev/tasche/pkg/auth0"
	"github.com/tasche-dev/tasche/pkg/jwtx"
)

// DefaultTestTokenTTL keeps locally minted tokens short enough that a
// leaked dev token goes stale within a working session.
const DefaultTestTokenTTL = time.Hour

// TestTokenService mints HS256 access tokens for local development and
// e2e tests, bypassing the identity provider entirely. It must never be
// enabled in a deployment that verifies provider tokens.
type TestTokenService struct {
	Signer *jwtx.HS256Signer
	Users  *UserService

	DefaultSubject string
	DefaultEmail   string
	TTL            time.Duration
}

// IssuedToken is the response of a test-token request.
type IssuedToken struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	User        domain.User
}

// Issue signs a token for the given subject, falling back to the
// configured defaults. The matching user record is upserted so the
// token works against protected endpoints immediately.
func (s *TestTokenService) Issue(ctx context.Context, subject, email string) (*IssuedToken, error) {
	if subject == "" {
		subject = s.DefaultSubject
	}
	if email == "" {
		email = s.DefaultEmail
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultTestTokenTTL
	}

	user, err := s.Users.UpsertFromProfile(ctx, &auth0.Profile{
		Sub:   subject,
		Email: email,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.Signer.Sign(jwtx.NewTestClaims(subject, email, ttl, time.Now()))
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
		User:        user,
	}, nil
}

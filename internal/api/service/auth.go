package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tasche-dev/tasche/internal/api/domain"
	"github.com/tasche-dev/tasche/pkg/auth0"
	"github.com/tasche-dev/tasche/pkg/slogx"
)

var (
	ErrExchangeRejected = errors.New("authorization_code_rejected")
	ErrInvalidRefresh   = errors.New("invalid_refresh_token")
)

// AuthService drives the Auth0 login flow: redirect, code exchange,
// identity resolution and refresh-token rotation.
type AuthService struct {
	Provider *auth0.Client
	Users    *UserService

	// RedirectURI is the callback URL registered with the tenant. It
	// must match byte for byte in the authorize redirect and the code
	// exchange or the provider rejects the code.
	RedirectURI string
}

// LoginResult is what a completed callback yields: the provider's token
// set plus the upserted local account.
type LoginResult struct {
	Tokens *auth0.TokenBundle
	User   domain.User
}

// LoginURL builds the provider redirect for a fresh login attempt.
func (s *AuthService) LoginURL(state string) string {
	return s.Provider.AuthorizeURL(s.RedirectURI, state)
}

// HandleCallback completes the authorization code flow. It exchanges
// the code, resolves the identity via userinfo and upserts the local
// user in a single transaction.
//
// The exchange and the upsert are not atomic with each other: if the
// upsert fails the provider has already issued tokens that nobody will
// use. That is harmless, the user just logs in again.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*LoginResult, error) {
	log := slogx.FromContext(ctx)

	tokens, err := s.Provider.ExchangeCode(ctx, code, s.RedirectURI)
	if err != nil {
		if errors.Is(err, auth0.ErrExchangeFailed) {
			log.Info("code exchange rejected by provider", "err", err)
			return nil, ErrExchangeRejected
		}
		return nil, err
	}

	profile, err := s.Provider.Userinfo(ctx, tokens.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.UpsertFromProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	log.Info("login completed",
		slog.String("user_id", user.ID),
		slog.Bool("refresh_token_issued", tokens.RefreshToken != ""),
	)

	return &LoginResult{Tokens: tokens, User: user}, nil
}

// Refresh exchanges a refresh token for a new token set. A rejection by
// the provider maps to ErrInvalidRefresh; transport failures pass
// through so callers can distinguish 401 from 503.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth0.TokenBundle, error) {
	tokens, err := s.Provider.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth0.ErrExchangeFailed) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	return tokens, nil
}

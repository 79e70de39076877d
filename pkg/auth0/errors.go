package auth0

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrExchangeFailed is returned when the provider rejects a token
	// request (bad code, expired or revoked refresh token, bad client).
	ErrExchangeFailed = errors.New("auth0: token exchange failed")

	// ErrUnavailable is returned when the provider cannot be reached or
	// answers with a 5xx status.
	ErrUnavailable = errors.New("auth0: provider unavailable")
)

// ExchangeError carries the OAuth2 error body the provider returned
// alongside the HTTP status. It unwraps to ErrExchangeFailed so callers
// can branch with errors.Is without losing the provider detail.
type ExchangeError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *ExchangeError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("auth0: %s: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("auth0: token request failed with status %d", e.StatusCode)
}

// Unwrap lets errors.Is(err, ErrExchangeFailed) match.
func (e *ExchangeError) Unwrap() error {
	return ErrExchangeFailed
}

// parseTokenError builds a typed error from a non-2xx /oauth/token response.
func parseTokenError(status int, body []byte) error {
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: provider returned status %d", ErrUnavailable, status)
	}

	exchErr := &ExchangeError{StatusCode: status}
	if err := json.Unmarshal(body, exchErr); err != nil || exchErr.Code == "" {
		exchErr.Code = "invalid_request"
		exchErr.Description = http.StatusText(status)
	}
	return exchErr
}

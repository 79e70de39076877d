package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// APIError is the wire shape of every error the API returns. Code is a
// stable machine-readable identifier; Message is for humans and may
// change without notice.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	WriteJSON(w, e.Status, e)
}

// WithMessage returns a copy of the error with a different message,
// keeping the status and code stable.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{Status: e.Status, Code: e.Code, Message: msg}
}

// Stable error codes. Clients branch on these, so they never change.
var (
	// ErrInvalidToken covers malformed tokens, bad signatures and claim
	// mismatches on the access token.
	ErrInvalidToken = &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "INVALID_TOKEN",
		Message: "the access token is invalid",
	}

	// ErrTokenExpired is returned when the access token's exp has passed.
	ErrTokenExpired = &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "TOKEN_EXPIRED",
		Message: "the access token has expired",
	}

	// ErrMissingSubjectClaim is returned when a token verifies but
	// carries no usable sub claim.
	ErrMissingSubjectClaim = &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "MISSING_SUBJECT_CLAIM",
		Message: "the access token has no subject claim",
	}

	// ErrMissingKeyID is returned when a provider token has no kid header.
	ErrMissingKeyID = &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "MISSING_KEY_ID",
		Message: "the access token has no key id header",
	}

	// ErrUnknownSigningKey is returned when the token's kid is not in
	// the cached provider key set.
	ErrUnknownSigningKey = &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "UNKNOWN_SIGNING_KEY",
		Message: "the access token was signed with an unrecognized key",
	}

	// ErrUpstreamUnavailable is returned when the identity provider
	// cannot be reached.
	ErrUpstreamUnavailable = &APIError{
		Status:  http.StatusServiceUnavailable,
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: "the identity provider is unavailable",
	}

	// ErrUpstreamExchangeFailed is returned when the provider rejects a
	// code exchange during the login callback.
	ErrUpstreamExchangeFailed = &APIError{
		Status:  http.StatusBadRequest,
		Code:    "UPSTREAM_EXCHANGE_FAILED",
		Message: "the identity provider rejected the authorization code",
	}

	// ErrInvalidState is returned when the callback's state parameter
	// does not match the login state cookie.
	ErrInvalidState = &APIError{
		Status:  http.StatusBadRequest,
		Code:    "INVALID_STATE",
		Message: "the state parameter does not match the login request",
	}

	// ErrMissingRefreshToken is returned when the refresh endpoint is
	// called without a refresh token cookie.
	ErrMissingRefreshToken = &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "MISSING_REFRESH_TOKEN",
		Message: "no refresh token cookie was provided",
	}

	// ErrInvalidRefreshToken is returned when the provider rejects the
	// presented refresh token.
	ErrInvalidRefreshToken = &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "INVALID_REFRESH_TOKEN",
		Message: "the refresh token is invalid, expired or revoked",
	}

	// ErrUserNotFound is returned when an authenticated subject has no
	// user record.
	ErrUserNotFound = &APIError{
		Status:  http.StatusNotFound,
		Code:    "USER_NOT_FOUND",
		Message: "no user exists for the authenticated subject",
	}

	// ErrNotFound is the generic 404 for unknown resources.
	ErrNotFound = &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrBadRequest is the generic 400 for malformed request bodies.
	ErrBadRequest = &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "the request is malformed or missing required parameters",
	}

	// ErrInternal is the fallback 500.
	ErrInternal = &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	}
)

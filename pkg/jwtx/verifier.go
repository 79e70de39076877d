package jwtx

import "errors"

// Verifier validates a bearer token and gives you back the claims if it's
// legit. The two implementations (HS256 for test tokens, RS256 against the
// provider's JWKS) are selected once at startup from configuration; a request
// only ever sees one of them, and neither falls back to the other.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	// ErrInvalidToken covers signature mismatch, malformed structure and
	// issuer/audience failures. Deliberately coarse: callers map it to a
	// single 401.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrExpired reports an exp claim in the past.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrMissingSubject reports an absent or empty sub claim on an otherwise
	// valid token.
	ErrMissingSubject = errors.New("jwtx: missing sub claim")

	// ErrMissingKID reports a provider-mode token without a kid header.
	ErrMissingKID = errors.New("jwtx: missing kid header")

	// ErrUnknownKID reports a kid with no matching key in the cached JWKS.
	ErrUnknownKID = errors.New("jwtx: unknown kid")

	// ErrJWKSUnavailable reports that the provider's JWKS endpoint could not
	// be reached or answered non-2xx.
	ErrJWKSUnavailable = errors.New("jwtx: jwks unavailable")

	// ErrIssuer and ErrAudience are claim-level mismatches. Both unwrap to
	// ErrInvalidToken so handlers only need one check.
	ErrIssuer   = newInvalidTokenError("issuer mismatch")
	ErrAudience = newInvalidTokenError("audience mismatch")
)

type invalidTokenError struct{ reason string }

func newInvalidTokenError(reason string) error { return &invalidTokenError{reason: reason} }

func (e *invalidTokenError) Error() string { return "jwtx: " + e.reason }
func (e *invalidTokenError) Unwrap() error { return ErrInvalidToken }

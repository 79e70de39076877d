package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tasche-dev/tasche/pkg/jwtx"
	"github.com/tasche-dev/tasche/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token on every request and injects
// the subject into the request context. The verifier is chosen once at
// startup, so this middleware is agnostic to the signing mode.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				ErrInvalidToken.WithMessage("missing bearer token").WriteError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				apiErr := verifyErrorToAPI(err)
				if apiErr.Status == http.StatusServiceUnavailable {
					log.Error("jwks fetch failed during verify", "err", err)
				} else {
					log.Warn("jwt verify failed", "err", err)
				}
				apiErr.WriteError(w)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeySubject, c.Subject)
	if c.Email != "" {
		ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	}
	return ctx
}

// verifyErrorToAPI maps verifier failures onto stable wire codes. The
// order matters: specific causes are checked before the generic
// invalid-token fallback.
func verifyErrorToAPI(err error) *APIError {
	switch {
	case errors.Is(err, jwtx.ErrJWKSUnavailable):
		return ErrUpstreamUnavailable
	case errors.Is(err, jwtx.ErrExpired):
		return ErrTokenExpired
	case errors.Is(err, jwtx.ErrMissingSubject):
		return ErrMissingSubjectClaim
	case errors.Is(err, jwtx.ErrMissingKID):
		return ErrMissingKeyID
	case errors.Is(err, jwtx.ErrUnknownKID):
		return ErrUnknownSigningKey
	default:
		return ErrInvalidToken
	}
}

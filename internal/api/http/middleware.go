package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/tasche-dev/tasche/internal/api/domain"
	"github.com/tasche-dev/tasche/internal/api/service"
	"github.com/tasche-dev/tasche/internal/api/store"
	"github.com/tasche-dev/tasche/pkg/httpx"
	"github.com/tasche-dev/tasche/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// RequireUser resolves the verified token subject to a local user
// record and injects it into the context. Runs after the authn
// middleware. A subject without a record gets 404 USER_NOT_FOUND, which
// tells the frontend to send the user back through the login flow.
func RequireUser(users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			sub, ok := httpx.SubjectFromContext(ctx)
			if !ok {
				httpx.ErrInvalidToken.WriteError(w)
				return
			}

			user, err := users.GetUserByID(ctx, sub)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					httpx.ErrUserNotFound.WriteError(w)
					return
				}
				log.Error("failed to load user", "user_id", sub, "err", err)
				httpx.ErrInternal.WriteError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithUser(ctx, user)))
		})
	}
}

func contextWithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// userFromContext returns the user injected by RequireUser.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}

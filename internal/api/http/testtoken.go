package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tasche-dev/tasche/internal/api/service"
	"github.com/tasche-dev/tasche/pkg/httpx"
	"github.com/tasche-dev/tasche/pkg/slogx"
)

type TestTokenHandler struct {
	Tokens *service.TestTokenService
}

// ServeHTTP mints an HS256 development token. The route is only mounted
// when test auth is enabled; in provider mode the path 404s.
//
//	@Summary		Issue a test token
//	@Description	Development only. Mints an HS256 access token and upserts the matching user.
//	@Tags			Auth
//	@Produce		json
//	@Param			user_id		query		string	false	"subject, defaults to the configured test user"
//	@Param			email		query		string	false	"email claim"
//	@Param			expires_in	query		int		false	"token lifetime in seconds, default 3600"
//	@Success		200			{object}	TokenResponse
//	@Router			/api/test-auth [get].
func (h *TestTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	svc := *h.Tokens
	if raw := q.Get("expires_in"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 1 {
			httpx.ErrBadRequest.WithMessage("expires_in must be a positive integer").WriteError(w)
			return
		}
		svc.TTL = time.Duration(seconds) * time.Second
	}

	issued, err := svc.Issue(ctx, q.Get("user_id"), q.Get("email"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to issue test token", "err", err)
		httpx.ErrInternal.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   issued.TokenType,
		ExpiresIn:   issued.ExpiresIn,
	})
}

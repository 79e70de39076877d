package http

import (
	"errors"
	"net/http"

	"github.com/tasche-dev/tasche/internal/api/service"
	"github.com/tasche-dev/tasche/pkg/auth0"
	"github.com/tasche-dev/tasche/pkg/cryptox"
	"github.com/tasche-dev/tasche/pkg/httpx"
	"github.com/tasche-dev/tasche/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Cookies     CookieSettings
}

// HandleLogin starts the login flow.
//
//	@Summary		Start login
//	@Description	Redirects to the identity provider's authorize endpoint and sets a short-lived state cookie.
//	@Tags			Auth
//	@Success		302	"Redirect to the provider"
//	@Router			/api/auth/login [get].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to generate state token", "err", err)
		httpx.ErrInternal.WriteError(w)
		return
	}

	setStateCookie(w, state, h.Cookies)
	http.Redirect(w, r, h.AuthService.LoginURL(state), http.StatusFound)
}

// HandleCallback completes the login flow.
//
//	@Summary		Login callback
//	@Description	Validates the state cookie, exchanges the authorization code and upserts the user. The refresh token goes into an HttpOnly cookie; the body carries only the access token.
//	@Tags			Auth
//	@Produce		json
//	@Param			code	query		string	true	"authorization code"
//	@Param			state	query		string	true	"state from the login redirect"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	httpx.APIError	"INVALID_STATE or UPSTREAM_EXCHANGE_FAILED"
//	@Failure		503		{object}	httpx.APIError	"UPSTREAM_UNAVAILABLE"
//	@Router			/api/auth/callback [get].
func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// State must match the cookie from HandleLogin before anything
	// touches the provider.
	stateCookie, err := r.Cookie(stateCookieName)
	state := r.URL.Query().Get("state")
	if err != nil || state == "" || !cryptox.TokensEqual(stateCookie.Value, state) {
		httpx.ErrInvalidState.WriteError(w)
		return
	}
	clearStateCookie(w, h.Cookies)

	code := r.URL.Query().Get("code")
	if code == "" {
		httpx.ErrBadRequest.WithMessage("missing code parameter").WriteError(w)
		return
	}

	result, err := h.AuthService.HandleCallback(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExchangeRejected):
			httpx.ErrUpstreamExchangeFailed.WriteError(w)
		case errors.Is(err, auth0.ErrUnavailable):
			httpx.ErrUpstreamUnavailable.WriteError(w)
		default:
			log.Error("callback failed", "err", err)
			httpx.ErrInternal.WriteError(w)
		}
		return
	}

	if result.Tokens.RefreshToken != "" {
		setRefreshCookie(w, result.Tokens.RefreshToken, h.Cookies)
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(result.Tokens))
}

// HandleRefresh rotates the access token.
//
//	@Summary		Refresh tokens
//	@Description	Exchanges the refresh token cookie for a new access token. When the provider rotates the refresh token the cookie is re-issued.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	TokenResponse
//	@Failure		401	{object}	httpx.APIError	"MISSING_REFRESH_TOKEN or INVALID_REFRESH_TOKEN"
//	@Failure		503	{object}	httpx.APIError	"UPSTREAM_UNAVAILABLE"
//	@Router			/api/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		// No network call without a token to present.
		httpx.ErrMissingRefreshToken.WriteError(w)
		return
	}

	tokens, err := h.AuthService.Refresh(ctx, cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			httpx.ErrInvalidRefreshToken.WriteError(w)
		case errors.Is(err, auth0.ErrUnavailable):
			httpx.ErrUpstreamUnavailable.WriteError(w)
		default:
			log.Error("refresh failed", "err", err)
			httpx.ErrInternal.WriteError(w)
		}
		return
	}

	// Opportunistic rotation: only re-issue the cookie when the
	// provider actually sent a new refresh token.
	if tokens.RefreshToken != "" {
		setRefreshCookie(w, tokens.RefreshToken, h.Cookies)
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(tokens))
}

// HandleLogout ends the session on this backend.
//
//	@Summary		Logout
//	@Description	Clears the refresh token cookie. The provider session is untouched.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	LogoutResponse
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearRefreshCookie(w, h.Cookies)
	httpx.WriteJSON(w, http.StatusOK, LogoutResponse{Message: "logged out"})
}

func tokenResponse(t *auth0.TokenBundle) TokenResponse {
	resp := TokenResponse{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresIn:   t.ExpiresIn,
	}
	if resp.TokenType == "" {
		resp.TokenType = "Bearer"
	}
	if resp.ExpiresIn <= 0 {
		resp.ExpiresIn = 3600
	}
	return resp
}

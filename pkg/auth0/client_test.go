package auth0_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasche-dev/tasche/pkg/auth0"
)

// fakeTenant stands in for an Auth0 tenant. It accepts exactly one
// authorization code and one refresh token and records the last form
// values each endpoint received.
type fakeTenant struct {
	code         string
	refreshToken string

	lastTokenForm url.Values
}

func (f *fakeTenant) handler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		f.lastTokenForm = r.PostForm

		grant := r.PostFormValue("grant_type")
		switch {
		case grant == "authorization_code" && r.PostFormValue("code") == f.code:
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token":  "AT1",
				"refresh_token": "RT1",
				"id_token":      "IDT1",
				"token_type":    "Bearer",
				"expires_in":    86400,
				"scope":         "openid profile email offline_access",
			})
		case grant == "refresh_token" && r.PostFormValue("refresh_token") == f.refreshToken:
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "AT2",
				"token_type":   "Bearer",
				"expires_in":   86400,
			})
		default:
			writeJSON(w, http.StatusForbidden, map[string]any{
				"error":             "invalid_grant",
				"error_description": "Unknown or invalid grant",
			})
		}
	})

	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer AT1" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid_token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"sub":     "auth0|123",
			"email":   "user@example.com",
			"name":    "Example User",
			"picture": "https://cdn.example.com/avatar.png",
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestClient(t *testing.T, tenant *fakeTenant) *auth0.Client {
	t.Helper()

	srv := httptest.NewServer(tenant.handler(t))
	t.Cleanup(srv.Close)

	client := auth0.NewClient(srv.URL, "client-id", "client-secret", "tasche-api")
	return client
}

func TestAuthorizeURL(t *testing.T) {
	t.Parallel()

	client := auth0.NewClient("tenant.example.auth0.com", "client-id", "client-secret", "tasche-api")
	raw := client.AuthorizeURL("https://app.example.com/api/auth/callback", "state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "tenant.example.auth0.com", parsed.Host)
	require.Equal(t, "https", parsed.Scheme)
	require.Equal(t, "/authorize", parsed.Path)

	q := parsed.Query()
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "client-id", q.Get("client_id"))
	require.Equal(t, "https://app.example.com/api/auth/callback", q.Get("redirect_uri"))
	require.Equal(t, "openid profile email offline_access", q.Get("scope"))
	require.Equal(t, "state-123", q.Get("state"))
	require.Equal(t, "tasche-api", q.Get("audience"))
}

func TestExchangeCode(t *testing.T) {
	t.Parallel()

	tenant := &fakeTenant{code: "VALIDCODE"}
	client := newTestClient(t, tenant)

	bundle, err := client.ExchangeCode(context.Background(), "VALIDCODE", "https://app.example.com/api/auth/callback")
	require.NoError(t, err)
	require.Equal(t, "AT1", bundle.AccessToken)
	require.Equal(t, "RT1", bundle.RefreshToken)
	require.Equal(t, 86400, bundle.ExpiresIn)

	require.Equal(t, "client-secret", tenant.lastTokenForm.Get("client_secret"))
	require.Equal(t, "https://app.example.com/api/auth/callback", tenant.lastTokenForm.Get("redirect_uri"))
}

func TestExchangeCodeRejected(t *testing.T) {
	t.Parallel()

	tenant := &fakeTenant{code: "VALIDCODE"}
	client := newTestClient(t, tenant)

	_, err := client.ExchangeCode(context.Background(), "BADCODE", "https://app.example.com/api/auth/callback")
	require.ErrorIs(t, err, auth0.ErrExchangeFailed)

	var exchErr *auth0.ExchangeError
	require.ErrorAs(t, err, &exchErr)
	require.Equal(t, http.StatusForbidden, exchErr.StatusCode)
	require.Equal(t, "invalid_grant", exchErr.Code)
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	tenant := &fakeTenant{refreshToken: "RT1"}
	client := newTestClient(t, tenant)

	bundle, err := client.Refresh(context.Background(), "RT1")
	require.NoError(t, err)
	require.Equal(t, "AT2", bundle.AccessToken)
	// No rotation configured on this tenant, so no new refresh token.
	require.Empty(t, bundle.RefreshToken)
}

func TestRefreshRejected(t *testing.T) {
	t.Parallel()

	tenant := &fakeTenant{refreshToken: "RT1"}
	client := newTestClient(t, tenant)

	_, err := client.Refresh(context.Background(), "REVOKED")
	require.ErrorIs(t, err, auth0.ErrExchangeFailed)
}

func TestUserinfo(t *testing.T) {
	t.Parallel()

	tenant := &fakeTenant{code: "VALIDCODE"}
	client := newTestClient(t, tenant)

	profile, err := client.Userinfo(context.Background(), "AT1")
	require.NoError(t, err)
	require.Equal(t, "auth0|123", profile.Sub)
	require.Equal(t, "user@example.com", profile.Email)
	require.Equal(t, "Example User", profile.Name)
}

func TestProviderUnreachable(t *testing.T) {
	t.Parallel()

	client := auth0.NewClient("http://127.0.0.1:1", "client-id", "client-secret", "")

	_, err := client.ExchangeCode(context.Background(), "VALIDCODE", "https://app.example.com/cb")
	require.ErrorIs(t, err, auth0.ErrUnavailable)

	_, err = client.Userinfo(context.Background(), "AT1")
	require.ErrorIs(t, err, auth0.ErrUnavailable)
}

func TestProviderServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := auth0.NewClient(srv.URL, "client-id", "client-secret", "")
	_, err := client.Refresh(context.Background(), "RT1")
	require.ErrorIs(t, err, auth0.ErrUnavailable)
}

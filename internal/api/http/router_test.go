package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	apihttp "github.com/tasche-dev/tasche/internal/api/http"
	"github.com/tasche-dev/tasche/internal/api/service"
	"github.com/tasche-dev/tasche/internal/api/store/drivers/sqlite"
	"github.com/tasche-dev/tasche/pkg/auth0"
	"github.com/tasche-dev/tasche/pkg/jwtx"
)

const (
	testSecret  = "dev_secret_key"
	redirectURI = "http://localhost:8000/api/auth/callback"
)

// fakeTenant is the provider side of the e2e tests: one valid code, one
// valid refresh token, one user. exchanges counts /oauth/token hits so
// tests can assert the backend short-circuits before calling out.
type fakeTenant struct {
	srv       *httptest.Server
	exchanges atomic.Int64
}

func newFakeTenant(t *testing.T) *fakeTenant {
	t.Helper()

	ft := &fakeTenant{}
	mux := stdhttp.NewServeMux()

	mux.HandleFunc("POST /oauth/token", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		ft.exchanges.Add(1)
		require.NoError(t, r.ParseForm())

		respond := func(status int, body map[string]any) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(body)
		}

		switch r.PostFormValue("grant_type") {
		case "authorization_code":
			if r.PostFormValue("code") != "VALIDCODE" {
				respond(stdhttp.StatusForbidden, map[string]any{"error": "invalid_grant"})
				return
			}
			respond(stdhttp.StatusOK, map[string]any{
				"access_token":  "AT1",
				"refresh_token": "RT1",
				"token_type":    "Bearer",
				"expires_in":    86400,
			})
		case "refresh_token":
			if r.PostFormValue("refresh_token") != "RT1" {
				respond(stdhttp.StatusForbidden, map[string]any{"error": "invalid_grant"})
				return
			}
			respond(stdhttp.StatusOK, map[string]any{
				"access_token": "AT2",
				"token_type":   "Bearer",
				"expires_in":   86400,
			})
		default:
			respond(stdhttp.StatusBadRequest, map[string]any{"error": "unsupported_grant_type"})
		}
	})

	mux.HandleFunc("GET /userinfo", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		if r.Header.Get("Authorization") != "Bearer AT1" {
			w.WriteHeader(stdhttp.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":   "auth0|123",
			"email": "user@example.com",
			"name":  "Example User",
		})
	})

	ft.srv = httptest.NewServer(mux)
	t.Cleanup(ft.srv.Close)
	return ft
}

type testEnv struct {
	router *apihttp.Router
	store  *sqlite.Store
	tenant *fakeTenant
	users  *service.UserService
	tokens *service.TestTokenService
}

// newTestEnv wires a full router the way the application does, with an
// in-memory database, an HS256 verifier and test auth enabled.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tenant := newFakeTenant(t)
	users := &service.UserService{Store: st}
	tokens := &service.TestTokenService{
		Signer:         jwtx.NewSignerHS256(testSecret),
		Users:          users,
		DefaultSubject: "test|dev-user",
		DefaultEmail:   "dev@tasche.local",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := apihttp.NewRouter(
		jwtx.NewVerifierHS256(testSecret),
		apihttp.CookieSettings{Secure: false, SameSite: stdhttp.SameSiteLaxMode},
		"http://localhost:3000",
		"test",
		st,
		logger,
	)
	r.AuthService = &service.AuthService{
		Provider:    auth0.NewClient(tenant.srv.URL, "client-id", "client-secret", "tasche-api"),
		Users:       users,
		RedirectURI: redirectURI,
	}
	r.UserService = users
	r.TestTokenService = tokens
	r.ApplyRoutes()

	return &testEnv{router: r, store: st, tenant: tenant, users: users, tokens: tokens}
}

func (e *testEnv) do(req *stdhttp.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, code, decodeBody[errorBody](t, rec).Code)
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *stdhttp.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// bearerToken mints a token through the test-auth endpoint, which also
// upserts the backing user.
func (e *testEnv) bearerToken(t *testing.T) string {
	t.Helper()
	rec := e.do(httptest.NewRequest(stdhttp.MethodGet, "/api/test-auth", nil))
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[apihttp.TokenResponse](t, rec).AccessToken
}

func authed(token string, req *stdhttp.Request) *stdhttp.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestLoginRedirect(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(stdhttp.MethodGet, "/api/auth/login", nil))
	require.Equal(t, stdhttp.StatusFound, rec.Code)

	state := findCookie(t, rec, "oauth_state")
	require.NotNil(t, state)
	require.True(t, state.HttpOnly)
	require.NotEmpty(t, state.Value)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/authorize", loc.Path)
	require.Equal(t, state.Value, loc.Query().Get("state"))
	require.Equal(t, "code", loc.Query().Get("response_type"))
	require.Equal(t, redirectURI, loc.Query().Get("redirect_uri"))
	require.Contains(t, loc.Query().Get("scope"), "offline_access")
}

func TestCallbackStateMismatch(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/auth/callback?code=VALIDCODE&state=forged", nil)
	req.AddCookie(&stdhttp.Cookie{Name: "oauth_state", Value: "genuine"})

	rec := env.do(req)
	requireErrorCode(t, rec, stdhttp.StatusBadRequest, "INVALID_STATE")

	// The provider was never contacted.
	require.Equal(t, int64(0), env.tenant.exchanges.Load())
}

func TestCallbackMissingStateCookie(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(stdhttp.MethodGet, "/api/auth/callback?code=VALIDCODE&state=genuine", nil))
	requireErrorCode(t, rec, stdhttp.StatusBadRequest, "INVALID_STATE")
	require.Equal(t, int64(0), env.tenant.exchanges.Load())
}

func TestCallbackFlow(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/auth/callback?code=VALIDCODE&state=genuine", nil)
	req.AddCookie(&stdhttp.Cookie{Name: "oauth_state", Value: "genuine"})

	rec := env.do(req)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[apihttp.TokenResponse](t, rec)
	require.Equal(t, "AT1", body.AccessToken)
	require.Equal(t, "Bearer", body.TokenType)
	require.Equal(t, 86400, body.ExpiresIn)
	require.NotContains(t, rec.Body.String(), "refresh_token")

	refresh := findCookie(t, rec, "refresh_token")
	require.NotNil(t, refresh)
	require.Equal(t, "RT1", refresh.Value)
	require.True(t, refresh.HttpOnly)
	require.Equal(t, "/api/auth", refresh.Path)

	// The state cookie was consumed.
	state := findCookie(t, rec, "oauth_state")
	require.NotNil(t, state)
	require.Less(t, state.MaxAge, 0)

	// The user landed in the database.
	u, err := env.users.GetUserByID(req.Context(), "auth0|123")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, "Example User", u.Name)
}

func TestCallbackRejectedCode(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/auth/callback?code=BADCODE&state=genuine", nil)
	req.AddCookie(&stdhttp.Cookie{Name: "oauth_state", Value: "genuine"})

	rec := env.do(req)
	requireErrorCode(t, rec, stdhttp.StatusBadRequest, "UPSTREAM_EXCHANGE_FAILED")
	require.Nil(t, findCookie(t, rec, "refresh_token"))
}

func TestRefresh(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&stdhttp.Cookie{Name: "refresh_token", Value: "RT1"})

	rec := env.do(req)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "AT2", decodeBody[apihttp.TokenResponse](t, rec).AccessToken)

	// The provider kept RT1, so the cookie is not re-issued.
	require.Nil(t, findCookie(t, rec, "refresh_token"))
}

func TestRefreshMissingCookie(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(stdhttp.MethodPost, "/api/auth/refresh", nil))
	requireErrorCode(t, rec, stdhttp.StatusUnauthorized, "MISSING_REFRESH_TOKEN")
	require.Equal(t, int64(0), env.tenant.exchanges.Load())
}

func TestRefreshRevoked(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&stdhttp.Cookie{Name: "refresh_token", Value: "REVOKED"})

	rec := env.do(req)
	requireErrorCode(t, rec, stdhttp.StatusUnauthorized, "INVALID_REFRESH_TOKEN")

	// The stale cookie is left alone; the client decides when to log out.
	require.Nil(t, findCookie(t, rec, "refresh_token"))
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearerToken(t)

	rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodPost, "/api/auth/logout", nil)))
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Equal(t, "logged out", decodeBody[apihttp.LogoutResponse](t, rec).Message)

	cleared := findCookie(t, rec, "refresh_token")
	require.NotNil(t, cleared)
	require.Less(t, cleared.MaxAge, 0)
}

func TestLogoutWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(stdhttp.MethodPost, "/api/auth/logout", nil))
	requireErrorCode(t, rec, stdhttp.StatusUnauthorized, "INVALID_TOKEN")
}

func TestTestAuthIssuesWorkingToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(stdhttp.MethodGet, "/api/test-auth?expires_in=120", nil))
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[apihttp.TokenResponse](t, rec)
	require.Equal(t, 120, body.ExpiresIn)

	// The minted token opens protected endpoints straight away.
	me := env.do(authed(body.AccessToken, httptest.NewRequest(stdhttp.MethodGet, "/api/users/me", nil)))
	require.Equal(t, stdhttp.StatusOK, me.Code, me.Body.String())

	user := decodeBody[apihttp.UserResponse](t, me)
	require.Equal(t, "test|dev-user", user.ID)
	require.Equal(t, "dev@tasche.local", user.Email)
	require.Equal(t, "Asia/Tokyo", user.Timezone)
}

func TestTestAuthCustomSubject(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(stdhttp.MethodGet,
		"/api/test-auth?user_id=test%7Calice&email=alice%40example.com", nil))
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())

	token := decodeBody[apihttp.TokenResponse](t, rec).AccessToken
	me := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/users/me", nil)))
	require.Equal(t, stdhttp.StatusOK, me.Code)
	require.Equal(t, "alice@example.com", decodeBody[apihttp.UserResponse](t, me).Email)
}

func TestTestAuthBadExpiresIn(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(stdhttp.MethodGet, "/api/test-auth?expires_in=soon", nil))
	requireErrorCode(t, rec, stdhttp.StatusBadRequest, "BAD_REQUEST")
}

func TestTestAuthUnmountedWhenDisabled(t *testing.T) {
	env := newTestEnv(t)

	// Rebuild the routes without the test-auth service.
	r := apihttp.NewRouter(
		jwtx.NewVerifierHS256(testSecret),
		apihttp.CookieSettings{SameSite: stdhttp.SameSiteLaxMode},
		"http://localhost:3000",
		"test",
		env.store,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	r.AuthService = env.router.AuthService
	r.UserService = env.users
	r.ApplyRoutes()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/api/test-auth", nil))
	require.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestMeUnknownSubject(t *testing.T) {
	env := newTestEnv(t)

	// A validly signed token whose subject has no user row.
	signer := jwtx.NewSignerHS256(testSecret)
	token, err := signer.Sign(jwtx.NewTestClaims("test|ghost", "ghost@example.com", time.Hour, time.Now()))
	require.NoError(t, err)

	rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/users/me", nil)))
	requireErrorCode(t, rec, stdhttp.StatusNotFound, "USER_NOT_FOUND")
}

func TestProtectedWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/users/me", "/api/tasks", "/api/dashboard", "/api/weeks/current"} {
		rec := env.do(httptest.NewRequest(stdhttp.MethodGet, path, nil))
		requireErrorCode(t, rec, stdhttp.StatusUnauthorized, "INVALID_TOKEN")
	}
}

func TestProtectedWithExpiredToken(t *testing.T) {
	env := newTestEnv(t)

	signer := jwtx.NewSignerHS256(testSecret)
	token, err := signer.Sign(jwtx.NewTestClaims("test|dev-user", "dev@tasche.local",
		time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/users/me", nil)))
	requireErrorCode(t, rec, stdhttp.StatusUnauthorized, "TOKEN_EXPIRED")
}

func TestTasks(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearerToken(t)

	t.Run("list excludes archived by default", func(t *testing.T) {
		rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/tasks", nil)))
		require.Equal(t, stdhttp.StatusOK, rec.Code)

		body := decodeBody[apihttp.TaskListResponse](t, rec)
		require.Len(t, body.Tasks, 3)
		for _, task := range body.Tasks {
			require.False(t, task.IsArchived)
		}
	})

	t.Run("list includes archived on request", func(t *testing.T) {
		rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/tasks?include_archived=true", nil)))
		require.Equal(t, stdhttp.StatusOK, rec.Code)

		body := decodeBody[apihttp.TaskListResponse](t, rec)
		require.Len(t, body.Tasks, 4)
		require.True(t, body.Tasks[3].IsArchived)
	})

	t.Run("create", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/tasks",
			strings.NewReader(`{"name":"Morning run"}`))
		rec := env.do(authed(token, req))
		require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())

		body := decodeBody[apihttp.TaskResponse](t, rec)
		require.Equal(t, "Morning run", body.Name)
		require.True(t, strings.HasPrefix(body.ID, "tsk_"))
		require.False(t, body.IsArchived)
	})

	t.Run("create rejects empty name", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/tasks", strings.NewReader(`{"name":""}`))
		rec := env.do(authed(token, req))
		requireErrorCode(t, rec, stdhttp.StatusBadRequest, "BAD_REQUEST")
	})

	t.Run("create rejects overlong name", func(t *testing.T) {
		long := strings.Repeat("x", 101)
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/tasks",
			strings.NewReader(`{"name":"`+long+`"}`))
		rec := env.do(authed(token, req))
		requireErrorCode(t, rec, stdhttp.StatusBadRequest, "BAD_REQUEST")
	})

	t.Run("update", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodPut, "/api/tasks/tsk_01HXYZ1234567890ABCDEF",
			strings.NewReader(`{"name":"English practice"}`))
		rec := env.do(authed(token, req))
		require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, "English practice", decodeBody[apihttp.TaskResponse](t, rec).Name)
	})

	t.Run("delete archives", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodDelete, "/api/tasks/tsk_01HXYZ1234567890ABCDEF", nil)
		rec := env.do(authed(token, req))
		require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
		require.True(t, decodeBody[apihttp.TaskResponse](t, rec).IsArchived)
	})
}

func TestWeeks(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearerToken(t)

	rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/weeks/current", nil)))
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	week := decodeBody[apihttp.WeekResponse](t, rec)
	require.Equal(t, "test|dev-user", week.UserID)
	require.Contains(t, []int{10, 30, 60, 120}, week.UnitDurationMinutes)

	t.Run("update duration", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodPut, "/api/weeks/current",
			strings.NewReader(`{"unit_duration_minutes":60}`))
		rec := env.do(authed(token, req))
		require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, 60, decodeBody[apihttp.WeekResponse](t, rec).UnitDurationMinutes)
	})

	t.Run("update rejects odd duration", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodPut, "/api/weeks/current",
			strings.NewReader(`{"unit_duration_minutes":45}`))
		rec := env.do(authed(token, req))
		requireErrorCode(t, rec, stdhttp.StatusBadRequest, "BAD_REQUEST")
	})
}

func TestGoals(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearerToken(t)

	rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/weeks/current/goals", nil)))
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.NotEmpty(t, decodeBody[apihttp.GoalsResponse](t, rec).Goals)

	t.Run("update with new task", func(t *testing.T) {
		payload := `{"unit_duration_minutes":30,"goals":[
			{"new_task_name":"Meditation","daily_targets":{"monday":1}}
		]}`
		req := httptest.NewRequest(stdhttp.MethodPut, "/api/weeks/current/goals", strings.NewReader(payload))
		rec := env.do(authed(token, req))
		require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())

		body := decodeBody[apihttp.GoalsUpdateResponse](t, rec)
		require.Len(t, body.CreatedTasks, 1)
		require.Equal(t, "Meditation", body.CreatedTasks[0].Name)
		require.True(t, strings.HasPrefix(body.CreatedTasks[0].ID, "tsk_"))
	})

	t.Run("update rejects goal without task reference", func(t *testing.T) {
		payload := `{"unit_duration_minutes":30,"goals":[{"daily_targets":{"monday":1}}]}`
		req := httptest.NewRequest(stdhttp.MethodPut, "/api/weeks/current/goals", strings.NewReader(payload))
		rec := env.do(authed(token, req))
		requireErrorCode(t, rec, stdhttp.StatusBadRequest, "BAD_REQUEST")
	})
}

func TestRecords(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearerToken(t)

	rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/weeks/current/records", nil)))
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.NotEmpty(t, decodeBody[apihttp.RecordsResponse](t, rec).Records)

	t.Run("create", func(t *testing.T) {
		payload := `{"task_id":"tsk_01HXYZ1234567890ABCDEF","day_of_week":"wednesday","actual_units":2}`
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/weeks/current/records", strings.NewReader(payload))
		rec := env.do(authed(token, req))
		require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())

		body := decodeBody[apihttp.RecordResponse](t, rec)
		require.True(t, strings.HasPrefix(body.ID, "rec_"))
		require.Equal(t, 2.0, body.ActualUnits)
	})

	t.Run("create rejects bad day", func(t *testing.T) {
		payload := `{"task_id":"tsk_01HXYZ1234567890ABCDEF","day_of_week":"someday","actual_units":2}`
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/weeks/current/records", strings.NewReader(payload))
		rec := env.do(authed(token, req))
		requireErrorCode(t, rec, stdhttp.StatusBadRequest, "BAD_REQUEST")
	})

	t.Run("create rejects negative units", func(t *testing.T) {
		payload := `{"task_id":"tsk_01HXYZ1234567890ABCDEF","day_of_week":"monday","actual_units":-1}`
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/weeks/current/records", strings.NewReader(payload))
		rec := env.do(authed(token, req))
		requireErrorCode(t, rec, stdhttp.StatusBadRequest, "BAD_REQUEST")
	})
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearerToken(t)

	rec := env.do(authed(token, httptest.NewRequest(stdhttp.MethodGet, "/api/dashboard", nil)))
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	body := decodeBody[apihttp.DashboardResponse](t, rec)
	require.True(t, body.HasGoalsConfigured)
	require.NotEmpty(t, body.TodayGoals)
	require.NotEmpty(t, body.WeeklyMatrix)
	for _, item := range body.WeeklyMatrix {
		require.Len(t, item.DailyData, 7)
	}
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	live := env.do(httptest.NewRequest(stdhttp.MethodGet, "/livez", nil))
	require.Equal(t, stdhttp.StatusOK, live.Code)
	require.Equal(t, "ok", decodeBody[apihttp.HealthResponse](t, live).Status)

	ready := env.do(httptest.NewRequest(stdhttp.MethodGet, "/readyz", nil))
	require.Equal(t, stdhttp.StatusOK, ready.Code)

	// A dead database turns readiness, but not liveness, red.
	require.NoError(t, env.store.Close())

	ready = env.do(httptest.NewRequest(stdhttp.MethodGet, "/readyz", nil))
	require.Equal(t, stdhttp.StatusServiceUnavailable, ready.Code)
	require.Equal(t, "degraded", decodeBody[apihttp.HealthResponse](t, ready).Status)

	live = env.do(httptest.NewRequest(stdhttp.MethodGet, "/livez", nil))
	require.Equal(t, stdhttp.StatusOK, live.Code)
}

func TestCORSHeaders(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/livez", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := env.do(req)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	preflight := httptest.NewRequest(stdhttp.MethodOptions, "/api/users/me", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	preflight.Header.Set("Access-Control-Request-Method", "GET")

	rec = env.do(preflight)
	require.Equal(t, stdhttp.StatusNoContent, rec.Code)
}

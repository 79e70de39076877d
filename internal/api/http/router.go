package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tasche-dev/tasche/internal/api/service"
	"github.com/tasche-dev/tasche/internal/api/store"
	"github.com/tasche-dev/tasche/pkg/httpx"
	"github.com/tasche-dev/tasche/pkg/jwtx"
	"github.com/tasche-dev/tasche/pkg/slogx"

	_ "github.com/tasche-dev/tasche/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	cookies      CookieSettings
	corsOrigin   string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService      *service.AuthService
	UserService      *service.UserService
	TestTokenService *service.TestTokenService // nil unless test auth is enabled
}

func NewRouter(
	verifier jwtx.Verifier,
	cookies CookieSettings,
	corsOrigin, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		cookies:      cookies,
		corsOrigin:   corsOrigin,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(r.corsOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTestAuth()
	r.registerUsers()
	r.registerTasks()
	r.registerWeeks()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tasche API
//	@version		0.1.0
//	@description	Personal time-allocation tracker backend. Login is delegated to Auth0;
//	@description	access tokens are provider-signed RS256 JWTs (or HS256 in test mode).
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a protected resource handler with the standard chain:
// bearer verification, user resolution and a per-user rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		RequireUser(r.UserService),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Cookies:     r.cookies,
	}

	// Login, callback and refresh all fan out to the provider, so they
	// share the strict IP limit.
	r.Mux.Handle("GET /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /api/auth/callback",
		httpx.Chain(http.HandlerFunc(h.HandleCallback),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Logout needs a valid token but not a user record; clearing the
	// cookie is harmless either way.
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTestAuth() {
	if r.TestTokenService == nil {
		return // route stays unmounted, requests 404
	}

	r.Mux.Handle("GET /api/test-auth",
		httpx.Chain(&TestTokenHandler{Tokens: r.TestTokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{}
	r.Mux.Handle("GET /api/users/me", r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{}

	r.Mux.Handle("GET /api/tasks", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /api/tasks", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/tasks/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/tasks/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerWeeks() {
	weeks := &WeeksHandler{}
	goals := &GoalsHandler{}
	records := &RecordsHandler{}

	r.Mux.Handle("GET /api/weeks/current", r.secured(http.HandlerFunc(weeks.HandleGetCurrent), httpx.LenientLimit))
	r.Mux.Handle("PUT /api/weeks/current", r.secured(http.HandlerFunc(weeks.HandleUpdateCurrent), httpx.ModerateLimit))

	r.Mux.Handle("GET /api/weeks/current/goals", r.secured(http.HandlerFunc(goals.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /api/weeks/current/goals", r.secured(http.HandlerFunc(goals.HandleUpdate), httpx.ModerateLimit))

	r.Mux.Handle("GET /api/weeks/current/records", r.secured(http.HandlerFunc(records.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("POST /api/weeks/current/records", r.secured(http.HandlerFunc(records.HandleCreate), httpx.ModerateLimit))
}

func (r *Router) registerDashboard() {
	r.Mux.Handle("GET /api/dashboard", r.secured(&DashboardHandler{}, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/tasche-dev/tasche/internal/api/http"
	"github.com/tasche-dev/tasche/internal/api/service"
	"github.com/tasche-dev/tasche/internal/api/store"
	"github.com/tasche-dev/tasche/internal/api/store/drivers/sqlite"
	"github.com/tasche-dev/tasche/pkg/auth0"
	"github.com/tasche-dev/tasche/pkg/jwtx"
	"github.com/tasche-dev/tasche/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API server with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	verifier jwtx.Verifier
	provider *auth0.Client

	// Services
	userService      *service.UserService
	authService      *service.AuthService
	testTokenService *service.TestTokenService // nil unless test auth is enabled

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tasche-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initVerifier()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api starting", "port", app.cfg.Port, "version", BuildVersion)
	if app.cfg.EnableTestAuth {
		app.logger.Warn("test auth is enabled, tokens are HS256-signed locally")
	}

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api stopped")
	return nil
}

// Handler exposes the assembled router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initVerifier picks the token verification strategy once at startup.
// Test mode verifies locally with the shared secret; provider mode
// verifies RS256 signatures against the tenant's JWKS.
func (app *Application) initVerifier() {
	if app.cfg.EnableTestAuth {
		app.verifier = jwtx.NewVerifierHS256(app.cfg.TestJWTSecret)
		return
	}

	keys := jwtx.NewRemoteKeySet(app.cfg.JWKSURL(), nil)
	issuer := issuerURL(app.cfg.Auth0Domain)

	// An unset audience means "don't enforce", not "enforce empty".
	var aud []string
	if app.cfg.Auth0Audience != "" {
		aud = []string{app.cfg.Auth0Audience}
	}
	app.verifier = jwtx.NewVerifierRS256(keys, issuer, aud)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.provider = auth0.NewClient(
		app.cfg.Auth0Domain,
		app.cfg.Auth0ClientID,
		app.cfg.Auth0ClientSecret,
		app.cfg.Auth0Audience,
	)

	app.userService = &service.UserService{Store: app.db}
	app.authService = &service.AuthService{
		Provider:    app.provider,
		Users:       app.userService,
		RedirectURI: app.cfg.CallbackURL(),
	}

	if app.cfg.EnableTestAuth {
		app.testTokenService = &service.TestTokenService{
			Signer:         jwtx.NewSignerHS256(app.cfg.TestJWTSecret),
			Users:          app.userService,
			DefaultSubject: app.cfg.TestAuthDefaultUser,
			DefaultEmail:   app.cfg.TestAuthDefaultEmail,
		}
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		httpapi.CookieSettings{
			Secure:   app.cfg.CookieSecure,
			SameSite: app.cfg.SameSiteMode(),
		},
		app.cfg.FrontendOrigin,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.TestTokenService = app.testTokenService // nil when test auth is off
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// issuerURL normalizes a tenant domain into the issuer claim form,
// which Auth0 emits with a trailing slash.
func issuerURL(domain string) string {
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return strings.TrimSuffix(domain, "/") + "/"
}

package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration for the API server.
type Config struct {
	// Auth0 tenant. Required unless test auth is enabled.
	Auth0Domain       string `env:"AUTH0_DOMAIN"`
	Auth0Audience     string `env:"AUTH0_AUDIENCE"`
	Auth0ClientID     string `env:"AUTH0_CLIENT_ID"`
	Auth0ClientSecret string `env:"AUTH0_CLIENT_SECRET"`

	// Test auth swaps provider-signed RS256 tokens for locally minted
	// HS256 ones. Never enable this outside development.
	EnableTestAuth       bool   `env:"ENABLE_TEST_AUTH" envDefault:"false"`
	TestJWTSecret        string `env:"TEST_JWT_SECRET" envDefault:"dev_secret_key"`
	TestAuthDefaultUser  string `env:"TEST_AUTH_DEFAULT_USER_ID" envDefault:"test|dev-user"`
	TestAuthDefaultEmail string `env:"TEST_AUTH_DEFAULT_EMAIL" envDefault:"dev@tasche.local"`

	// PublicBaseURL is the externally visible origin of this API; the
	// OAuth callback URL is derived from it.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8000"`

	// FrontendOrigin is the single origin allowed by CORS.
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:3000"`

	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CookieSameSite string `env:"COOKIE_SAMESITE" envDefault:"lax"` // lax, strict or none

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"tasche.db"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8000"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads configuration from the environment, loading a .env
// file first if one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if !c.EnableTestAuth {
		if c.Auth0Domain == "" {
			return fmt.Errorf("AUTH0_DOMAIN is required when test auth is disabled")
		}
		if c.Auth0ClientID == "" {
			return fmt.Errorf("AUTH0_CLIENT_ID is required when test auth is disabled")
		}
		if c.Auth0ClientSecret == "" {
			return fmt.Errorf("AUTH0_CLIENT_SECRET is required when test auth is disabled")
		}
	}

	if c.EnableTestAuth && c.TestJWTSecret == "" {
		return fmt.Errorf("TEST_JWT_SECRET must not be empty when test auth is enabled")
	}

	switch strings.ToLower(c.CookieSameSite) {
	case "lax", "strict", "none":
	default:
		return fmt.Errorf("COOKIE_SAMESITE must be lax, strict or none, got %q", c.CookieSameSite)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}

	return nil
}

// CallbackURL is the redirect URI registered with the provider.
func (c Config) CallbackURL() string {
	return strings.TrimSuffix(c.PublicBaseURL, "/") + "/api/auth/callback"
}

// SameSiteMode maps the configured string onto the http constant.
func (c Config) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// JWKSURL is the tenant's key discovery endpoint.
func (c Config) JWKSURL() string {
	domain := c.Auth0Domain
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return strings.TrimSuffix(domain, "/") + "/.well-known/jwks.json"
}

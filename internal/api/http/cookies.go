package http

import "net/http"

const (
	refreshCookieName   = "refresh_token"
	refreshCookieMaxAge = 604800 // 7 days in seconds
	authCookiePath      = "/api/auth"

	// The state cookie only needs to survive the round trip to the
	// provider and back.
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 600
)

// CookieSettings carries the deployment-dependent cookie attributes.
// Secure and SameSite=None are required when the frontend lives on a
// different origin; local development runs Lax over plain HTTP.
type CookieSettings struct {
	Secure   bool
	SameSite http.SameSite
}

func setRefreshCookie(w http.ResponseWriter, value string, cs CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		MaxAge:   refreshCookieMaxAge,
		Path:     authCookiePath,
		HttpOnly: true,
		Secure:   cs.Secure,
		SameSite: cs.SameSite,
	})
}

func clearRefreshCookie(w http.ResponseWriter, cs CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     authCookiePath,
		HttpOnly: true,
		Secure:   cs.Secure,
		SameSite: cs.SameSite,
	})
}

func setStateCookie(w http.ResponseWriter, value string, cs CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		MaxAge:   stateCookieMaxAge,
		Path:     authCookiePath,
		HttpOnly: true,
		Secure:   cs.Secure,
		SameSite: cs.SameSite,
	})
}

func clearStateCookie(w http.ResponseWriter, cs CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     authCookiePath,
		HttpOnly: true,
		Secure:   cs.Secure,
		SameSite: cs.SameSite,
	})
}

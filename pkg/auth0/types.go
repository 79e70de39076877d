package auth0

// TokenBundle is the token set returned by the provider's /oauth/token
// endpoint for both the authorization_code and refresh_token grants.
//
// RefreshToken is empty unless the tenant issued one for this grant.
// Auth0 only rotates refresh tokens when rotation is enabled, so callers
// must treat an empty value as "keep the one you already have".
type TokenBundle struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
}

// Profile is the OIDC identity returned by the provider's /userinfo endpoint.
// Sub is the only field the provider guarantees; the rest depend on the
// scopes granted and the upstream connection.
type Profile struct {
	Sub     string `json:"sub"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

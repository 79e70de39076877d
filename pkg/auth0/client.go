// Package auth0 is a small client for the slice of the Auth0 surface the
// API needs: building the authorize redirect, exchanging authorization
// codes, refreshing token sets and fetching the OIDC userinfo profile.
package auth0

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultScope requests OIDC identity claims plus a refresh token.
const defaultScope = "openid profile email offline_access"

// Client talks to a single Auth0 tenant.
//
// Domain is the bare tenant host ("tenant.example.auth0.com") or a full
// base URL; endpoint helpers accept both so tests can point the client
// at an httptest server.
type Client struct {
	Domain       string
	ClientID     string
	ClientSecret string
	Audience     string

	// HTTPClient is used for all provider calls. Defaults to a client
	// with a 10 second timeout when nil.
	HTTPClient *http.Client
}

// NewClient creates a Client for the given tenant.
func NewClient(domain, clientID, clientSecret, audience string) *Client {
	return &Client{
		Domain:       domain,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Audience:     audience,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// baseURL normalizes Domain into a https base URL.
func (c *Client) baseURL() string {
	if strings.HasPrefix(c.Domain, "http://") || strings.HasPrefix(c.Domain, "https://") {
		return strings.TrimSuffix(c.Domain, "/")
	}
	return "https://" + strings.TrimSuffix(c.Domain, "/")
}

// AuthorizeURL builds the provider's /authorize redirect for the
// authorization code flow. The caller supplies the state token and is
// responsible for verifying it on the way back.
func (c *Client) AuthorizeURL(redirectURI, state string) string {
	q := url.Values{
		"response_type": {"code"},
		"client_id":     {c.ClientID},
		"redirect_uri":  {redirectURI},
		"scope":         {defaultScope},
		"state":         {state},
	}
	if c.Audience != "" {
		q.Set("audience", c.Audience)
	}
	return c.baseURL() + "/authorize?" + q.Encode()
}

// ExchangeCode swaps an authorization code for a token set.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenBundle, error) {
	data := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {redirectURI},
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
	}

	return c.requestToken(ctx, data)
}

// Refresh requests a fresh token set using a refresh token. The returned
// bundle only carries a new refresh token when the tenant rotates them.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenBundle, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
	}

	return c.requestToken(ctx, data)
}

// Userinfo fetches the OIDC profile for an access token.
func (c *Client) Userinfo(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL()+"/userinfo",
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: userinfo returned status %d", ErrUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf(
			"auth0: userinfo request failed with status %d: %s",
			resp.StatusCode,
			string(bodyBytes),
		)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if profile.Sub == "" {
		return nil, fmt.Errorf("auth0: userinfo response is missing sub")
	}

	return &profile, nil
}

func (c *Client) requestToken(ctx context.Context, data url.Values) (*TokenBundle, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL()+"/oauth/token",
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseTokenError(resp.StatusCode, bodyBytes)
	}

	var bundle TokenBundle
	if err := json.Unmarshal(bodyBytes, &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if bundle.AccessToken == "" {
		return nil, fmt.Errorf("auth0: token response is missing access_token")
	}

	return &bundle, nil
}

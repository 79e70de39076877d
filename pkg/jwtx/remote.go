package jwtx

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RemoteKeySet caches the identity provider's signing keys, fetched from its
// well-known JWKS endpoint. It is constructed once at startup and injected
// into the RS256 verifier; there is no package-level state.
//
// The fetch is lazy: nothing happens until the first Get, and a populated
// cache is never refetched, so keys rotated by the provider after startup
// are unknown until the process restarts. Concurrent first-time misses may
// each fetch; the overwrite is idempotent, so last writer wins and nobody
// corrupts anything.
type RemoteKeySet struct {
	url    string
	client *http.Client

	mu   sync.RWMutex
	keys *KeySet
}

// NewRemoteKeySet creates a key cache for the given JWKS URL. A nil client
// falls back to a default with a 10s timeout.
func NewRemoteKeySet(url string, client *http.Client) *RemoteKeySet {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RemoteKeySet{
		url:    url,
		client: client,
	}
}

// Get returns the public key for the given kid, fetching the JWKS first if
// the cache is empty. An unknown kid on a populated cache is a hard failure;
// no refetch-and-retry.
func (r *RemoteKeySet) Get(kid string) (*rsa.PublicKey, error) {
	keys, err := r.ensure()
	if err != nil {
		return nil, err
	}
	return keys.Get(kid)
}

// ensure returns the cached KeySet, fetching it when empty.
func (r *RemoteKeySet) ensure() (*KeySet, error) {
	r.mu.RLock()
	cached := r.keys
	r.mu.RUnlock()

	if cached != nil && cached.Len() > 0 {
		return cached, nil
	}

	fetched, err := r.fetch()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.keys = fetched
	r.mu.Unlock()

	return fetched, nil
}

func (r *RemoteKeySet) fetch() (*KeySet, error) {
	resp, err := r.client.Get(r.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJWKSUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d from %s", ErrJWKSUnavailable, resp.StatusCode, r.url)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrJWKSUnavailable, err)
	}

	keys := NewKeySet()
	if err := keys.ResetFromJWKS(jwks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJWKSUnavailable, err)
	}
	return keys, nil
}

package doorsdk

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// expiryBuffer renews tokens slightly before the server would reject them.
const expiryBuffer = 30 * time.Second

type renewFunc func(ctx context.Context) (*TokenResponse, error)

// Session is an authenticated view of the API. Sessions created by Login
// transparently log in again once the access token expires.
type Session struct {
	client *SDKClient
	renew  renewFunc

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
	scopes      map[string]bool
}

func newSession(client *SDKClient, tokenResp *TokenResponse, renew renewFunc) *Session {
	s := &Session{client: client, renew: renew}
	s.store(tokenResp)
	return s
}

// store replaces the token. Callers hold the write lock or own s exclusively.
func (s *Session) store(tokenResp *TokenResponse) {
	s.accessToken = tokenResp.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - expiryBuffer)
	s.scopes = parseScopes(tokenResp.Scope)
}

// parseScopes parses a space-delimited scope string into a map for fast lookup.
func parseScopes(scopeStr string) map[string]bool {
	parts := strings.Fields(scopeStr)
	scopes := make(map[string]bool, len(parts))
	for _, scope := range parts {
		scopes[scope] = true
	}
	return scopes
}

// getValidToken returns a valid access token, renewing it if expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have renewed while we waited.
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}
	if s.renew == nil {
		return "", ErrSessionExpired
	}

	tokenResp, err := s.renew(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to renew token: %w", err)
	}
	s.store(tokenResp)

	return s.accessToken, nil
}

// AccessToken returns the current access token without checking expiration.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Scopes returns the granted scopes.
func (s *Session) Scopes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scopes := make([]string, 0, len(s.scopes))
	for scope := range s.scopes {
		scopes = append(scopes, scope)
	}
	return scopes
}

// HasScope returns true if the session has the specified scope.
func (s *Session) HasScope(scope string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope]
}

// checkScopes checks if the session has all required scopes.
func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes || len(required) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	for _, scope := range required {
		if !s.scopes[scope] {
			missing = append(missing, scope)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required scope(s): %s", strings.Join(missing, ", "))
	}

	return nil
}

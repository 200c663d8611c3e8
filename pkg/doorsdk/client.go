package doorsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the door key service. It covers the public and
// door reader endpoints and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// CheckScopes makes Sessions refuse requests locally when the token lacks
	// a required scope. Tests disable it to exercise the server side checks.
	CheckScopes bool
}

// NewSDKClient creates a client with scope checking enabled.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		CheckScopes: true,
	}
}

// Login authenticates with a user name or email and a password. The returned
// session logs in again with the same credentials once its token expires.
func (c *SDKClient) Login(ctx context.Context, login, password string) (*Session, error) {
	tokenResp, err := c.PasswordGrant(ctx, login, password)
	if err != nil {
		return nil, err
	}

	renew := func(ctx context.Context) (*TokenResponse, error) {
		return c.PasswordGrant(ctx, login, password)
	}
	return newSession(c, tokenResp, renew), nil
}

// NewSessionFromToken wraps an access token obtained elsewhere. The session
// fails with ErrSessionExpired once the token expires.
func (c *SDKClient) NewSessionFromToken(accessToken, scope string, expiresIn int) *Session {
	return newSession(c, &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Scope:       scope,
	}, nil)
}

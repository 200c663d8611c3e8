package doorsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// PasswordGrant exchanges a login (user name or email) and password for an
// access token.
func (c *SDKClient) PasswordGrant(ctx context.Context, login, password string) (*TokenResponse, error) {
	data := url.Values{
		"username": {login},
		"password": {password},
	}
	headers := map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/token", strings.NewReader(data.Encode()), headers)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

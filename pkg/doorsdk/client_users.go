package doorsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Bootstrap creates the first administrator. token must match the server's
// BOOTSTRAP_TOKEN.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*BootstrapResponse, error) {
	body, headers, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	headers["X-Bootstrap-Token"] = token

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/bootstrap", body, headers)
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register signs up a new user. When the server requires email validation
// the account stays inactive until ValidateEmail succeeds.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	body, headers, err := jsonBody(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users", body, headers)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateEmail activates the account the code was mailed to.
func (c *SDKClient) ValidateEmail(ctx context.Context, code string) (*UserResponse, error) {
	path := "/v1/users/validate-email?" + url.Values{"code": {code}}.Encode()
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

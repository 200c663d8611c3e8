package doorsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Scopes granted by the door service.
const (
	ScopeKeysRead   = "keys:read"
	ScopeKeysWrite  = "keys:write"
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"
)

// Me returns the authenticated user.
// Requires: keys:read scope
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users/me", nil, nil, ScopeKeysRead)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes the authenticated user and all of their shares.
// Requires: keys:write scope
func (s *Session) DeleteAccount(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/users/me", nil, nil, ScopeKeysWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// MyKeys lists the user's validated, non-revoked shares.
// Requires: keys:read scope
func (s *Session) MyKeys(ctx context.Context) ([]ShareResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users/me/keys", nil, nil, ScopeKeysRead)
	if err != nil {
		return nil, err
	}

	var out ListSharesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Shares, nil
}

// RequestKey asks for a share on doorName. The share is unusable until an
// administrator validates it.
// Requires: keys:write scope
func (s *Session) RequestKey(ctx context.Context, doorName string) (*ShareResponse, error) {
	body, headers, err := jsonBody(KeyRequest{DoorName: doorName})
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/users/me/keys", body, headers, ScopeKeysWrite)
	if err != nil {
		return nil, err
	}

	var out ShareResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReissueKey revokes one of the user's shares and returns its replacement.
// Requires: keys:write scope
func (s *Session) ReissueKey(ctx context.Context, shareID string) (*ShareResponse, error) {
	path := "/v1/users/me/keys/" + url.PathEscape(shareID) + "/reissue"
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, nil, nil, ScopeKeysWrite)
	if err != nil {
		return nil, err
	}

	var out ShareResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteKey removes one of the user's share records.
// Requires: keys:write scope
func (s *Session) DeleteKey(ctx context.Context, shareID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/users/me/keys/"+url.PathEscape(shareID), nil, nil, ScopeKeysWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

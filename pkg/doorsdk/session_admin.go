package doorsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Administrative operations - require admin:read or admin:write

func pageQuery(offset, limit int) url.Values {
	q := url.Values{}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// ListUsers pages through all accounts.
// Requires: admin:read scope
func (s *Session) ListUsers(ctx context.Context, offset, limit int) ([]UserResponse, error) {
	path := withQuery("/v1/admin/users", pageQuery(offset, limit))
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil, ScopeAdminRead)
	if err != nil {
		return nil, err
	}

	var out ListUsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// ListDoors pages through all doors.
// Requires: admin:read scope
func (s *Session) ListDoors(ctx context.Context, offset, limit int) ([]DoorResponse, error) {
	path := withQuery("/v1/admin/doors", pageQuery(offset, limit))
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil, ScopeAdminRead)
	if err != nil {
		return nil, err
	}

	var out ListDoorsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Doors, nil
}

// ListShares lists share records matching f.
// Requires: admin:read scope
func (s *Session) ListShares(ctx context.Context, f ShareFilter) ([]ShareResponse, error) {
	q := pageQuery(f.Offset, f.Limit)
	if f.UserName != "" {
		q.Set("user", f.UserName)
	}
	if f.DoorName != "" {
		q.Set("door", f.DoorName)
	}
	if f.IsValidated != nil {
		q.Set("validated", strconv.FormatBool(*f.IsValidated))
	}
	if f.IsBlacklisted != nil {
		q.Set("blacklisted", strconv.FormatBool(*f.IsBlacklisted))
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, withQuery("/v1/admin/shares", q), nil, nil, ScopeAdminRead)
	if err != nil {
		return nil, err
	}

	var out ListSharesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Shares, nil
}

// ValidateShare approves a requested share.
// Requires: admin:write scope
func (s *Session) ValidateShare(ctx context.Context, shareID string) (*ShareResponse, error) {
	return s.putShare(ctx, shareID, "validate", http.StatusOK)
}

// BlacklistShare revokes a share and returns the validated replacement
// issued for the same user and door.
// Requires: admin:write scope
func (s *Session) BlacklistShare(ctx context.Context, shareID string) (*ShareResponse, error) {
	return s.putShare(ctx, shareID, "blacklist", http.StatusCreated)
}

func (s *Session) putShare(ctx context.Context, shareID, action string, status int) (*ShareResponse, error) {
	path := "/v1/admin/shares/" + url.PathEscape(shareID) + "/" + action
	resp, err := s.doAuthRequest(ctx, http.MethodPut, path, nil, nil, ScopeAdminWrite)
	if err != nil {
		return nil, err
	}

	var out ShareResponse
	if err := decodeJSON(resp, &out, status); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDoor registers a door. The response is the only time the door
// secret is returned.
// Requires: admin:write scope
func (s *Session) CreateDoor(ctx context.Context, name string) (*CreatedDoorResponse, error) {
	body, headers, err := jsonBody(CreateDoorRequest{Name: name})
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/doors", body, headers, ScopeAdminWrite)
	if err != nil {
		return nil, err
	}

	var out CreatedDoorResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDoor removes a door and every share issued for it.
// Requires: admin:write scope
func (s *Session) DeleteDoor(ctx context.Context, name string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/doors/"+url.PathEscape(name), nil, nil, ScopeAdminWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

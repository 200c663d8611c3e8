package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
)

func toUserResponse(u domain.User) doorsdk.UserResponse {
	return doorsdk.UserResponse{
		UserName:  u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func toShareResponse(s domain.Share) doorsdk.ShareResponse {
	return doorsdk.ShareResponse{
		ID:            s.ID,
		UserName:      s.UserName,
		DoorName:      s.DoorName,
		Share:         s.Value,
		State:         string(s.State()),
		IsValidated:   s.IsValidated,
		IsBlacklisted: s.IsBlacklisted,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toShareResponses(shares []domain.Share) []doorsdk.ShareResponse {
	out := make([]doorsdk.ShareResponse, 0, len(shares))
	for _, s := range shares {
		out = append(out, toShareResponse(s))
	}
	return out
}

// toDoorResponse drops the secret.
func toDoorResponse(d domain.Door) doorsdk.DoorResponse {
	return doorsdk.DoorResponse{
		Name:      d.Name,
		Share:     d.Share,
		CreatedAt: d.CreatedAt,
	}
}

// parsePage reads offset and limit query parameters. Missing values are
// zero and get normalised by the services.
func parsePage(r *http.Request) (domain.Page, bool) {
	var p domain.Page
	var err error
	q := r.URL.Query()
	if v := q.Get("offset"); v != "" {
		if p.Offset, err = strconv.Atoi(v); err != nil {
			return p, false
		}
	}
	if v := q.Get("limit"); v != "" {
		if p.Limit, err = strconv.Atoi(v); err != nil {
			return p, false
		}
	}
	return p, true
}

// parseFlag reads an optional boolean query parameter.
func parseFlag(r *http.Request, name string) (*bool, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, false
	}
	return &b, true
}

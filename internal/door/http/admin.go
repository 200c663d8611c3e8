package http

import (
	"net/http"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
)

// AdminHandler serves the listings and share approval endpoints.
type AdminHandler struct {
	UserService *service.UserService
	DoorService *service.DoorService
	KeyService  *service.KeyService
}

// Users godoc
//
//	@Summary		List users
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			offset	query		int	false	"Offset"
//	@Param			limit	query		int	false	"Limit (default 100, max 1000)"
//	@Success		200		{object}	doorsdk.ListUsersResponse
//	@Failure		400		{object}	doorsdk.ErrorResponse	"Invalid paging"
//	@Failure		403		{object}	doorsdk.ErrorResponse	"Insufficient scope"
//	@Router			/v1/admin/users [get].
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		writeBadRequest(w, "offset and limit must be integers")
		return
	}

	users, err := h.UserService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]doorsdk.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, doorsdk.ListUsersResponse{Users: out})
}

// Doors godoc
//
//	@Summary		List doors
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			offset	query		int	false	"Offset"
//	@Param			limit	query		int	false	"Limit (default 100, max 1000)"
//	@Success		200		{object}	doorsdk.ListDoorsResponse
//	@Failure		400		{object}	doorsdk.ErrorResponse	"Invalid paging"
//	@Failure		403		{object}	doorsdk.ErrorResponse	"Insufficient scope"
//	@Router			/v1/admin/doors [get].
func (h *AdminHandler) Doors(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		writeBadRequest(w, "offset and limit must be integers")
		return
	}

	doors, err := h.DoorService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]doorsdk.DoorResponse, 0, len(doors))
	for _, d := range doors {
		out = append(out, toDoorResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, doorsdk.ListDoorsResponse{Doors: out})
}

// Shares godoc
//
//	@Summary		List shares
//	@Description	Lists share records, optionally filtered by user, door and state.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			user		query		string	false	"User name"
//	@Param			door		query		string	false	"Door name"
//	@Param			validated	query		bool	false	"Validation state"
//	@Param			blacklisted	query		bool	false	"Revocation state"
//	@Param			offset		query		int		false	"Offset"
//	@Param			limit		query		int		false	"Limit (default 100, max 1000)"
//	@Success		200			{object}	doorsdk.ListSharesResponse
//	@Failure		400			{object}	doorsdk.ErrorResponse	"Invalid filter"
//	@Failure		403			{object}	doorsdk.ErrorResponse	"Insufficient scope"
//	@Router			/v1/admin/shares [get].
func (h *AdminHandler) Shares(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		writeBadRequest(w, "offset and limit must be integers")
		return
	}
	validated, ok := parseFlag(r, "validated")
	if !ok {
		writeBadRequest(w, "validated must be a boolean")
		return
	}
	blacklisted, ok := parseFlag(r, "blacklisted")
	if !ok {
		writeBadRequest(w, "blacklisted must be a boolean")
		return
	}

	q := r.URL.Query()
	shares, err := h.KeyService.ListShares(r.Context(), domain.ShareFilter{
		UserName:      q.Get("user"),
		DoorName:      q.Get("door"),
		IsValidated:   validated,
		IsBlacklisted: blacklisted,
		Page:          page,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, doorsdk.ListSharesResponse{Shares: toShareResponses(shares)})
}

// Validate godoc
//
//	@Summary		Validate a share
//	@Description	Approves a requested share. Validating an already validated share returns it unchanged.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Share ID"
//	@Success		200	{object}	doorsdk.ShareResponse
//	@Failure		404	{object}	doorsdk.ErrorResponse	"Unknown share"
//	@Failure		409	{object}	doorsdk.ErrorResponse	"Share is blacklisted"
//	@Router			/v1/admin/shares/{id}/validate [put].
func (h *AdminHandler) Validate(w http.ResponseWriter, r *http.Request) {
	share, err := h.KeyService.Validate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toShareResponse(share))
}

// Blacklist godoc
//
//	@Summary		Blacklist a share
//	@Description	Revokes a share and issues a validated replacement for the same user and door. Returns the replacement.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Share ID"
//	@Success		201	{object}	doorsdk.ShareResponse	"Replacement share"
//	@Failure		404	{object}	doorsdk.ErrorResponse	"Unknown share"
//	@Failure		409	{object}	doorsdk.ErrorResponse	"Share already blacklisted"
//	@Router			/v1/admin/shares/{id}/blacklist [put].
func (h *AdminHandler) Blacklist(w http.ResponseWriter, r *http.Request) {
	share, err := h.KeyService.Blacklist(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toShareResponse(share))
}

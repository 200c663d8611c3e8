package http

import (
	"net/http"

	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
)

type KeyHandler struct {
	KeyService *service.KeyService
}

// List godoc
//
//	@Summary		List my keys
//	@Description	Returns the caller's validated, non-revoked shares.
//	@Tags			Keys
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	doorsdk.ListSharesResponse
//	@Failure		401	{object}	doorsdk.ErrorResponse	"Missing or invalid token"
//	@Router			/v1/users/me/keys [get].
func (h *KeyHandler) List(w http.ResponseWriter, r *http.Request) {
	shares, err := h.KeyService.MyKeys(r.Context(), httpx.UserName(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, doorsdk.ListSharesResponse{Shares: toShareResponses(shares)})
}

// Request godoc
//
//	@Summary		Request a key
//	@Description	Issues an unvalidated share for the caller on a door. Fails when the caller already holds an active share for it.
//	@Tags			Keys
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		doorsdk.KeyRequest		true	"Door to request a key for"
//	@Success		201		{object}	doorsdk.ShareResponse	"Issued share"
//	@Failure		400		{object}	doorsdk.ErrorResponse	"Invalid request"
//	@Failure		404		{object}	doorsdk.ErrorResponse	"Unknown door"
//	@Failure		409		{object}	doorsdk.ErrorResponse	"Active key already exists"
//	@Router			/v1/users/me/keys [post].
func (h *KeyHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req doorsdk.KeyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if req.DoorName == "" {
		writeBadRequest(w, "door_name is required")
		return
	}

	share, err := h.KeyService.RequestKey(r.Context(), httpx.UserName(r.Context()), req.DoorName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toShareResponse(share))
}

// Reissue godoc
//
//	@Summary		Reissue a key
//	@Description	Revokes one of the caller's shares and issues a replacement in the same validation state.
//	@Tags			Keys
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Share ID"
//	@Success		201	{object}	doorsdk.ShareResponse	"Replacement share"
//	@Failure		403	{object}	doorsdk.ErrorResponse	"Share belongs to another user"
//	@Failure		404	{object}	doorsdk.ErrorResponse	"Unknown share"
//	@Failure		409	{object}	doorsdk.ErrorResponse	"Share already revoked"
//	@Router			/v1/users/me/keys/{id}/reissue [post].
func (h *KeyHandler) Reissue(w http.ResponseWriter, r *http.Request) {
	share, err := h.KeyService.Reissue(r.Context(), httpx.UserName(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toShareResponse(share))
}

// Delete godoc
//
//	@Summary		Delete a key
//	@Tags			Keys
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Share ID"
//	@Success		204	"Deleted"
//	@Failure		403	{object}	doorsdk.ErrorResponse	"Share belongs to another user"
//	@Failure		404	{object}	doorsdk.ErrorResponse	"Unknown share"
//	@Router			/v1/users/me/keys/{id} [delete].
func (h *KeyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.KeyService.DeleteKey(r.Context(), httpx.UserName(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Identify godoc
//
//	@Summary		Identify a share
//	@Description	Decodes the user name embedded in a share.
//	@Tags			Shares
//	@Accept			json
//	@Produce		json
//	@Param			request	body		doorsdk.IdentifyRequest		true	"Share to decode"
//	@Success		200		{object}	doorsdk.IdentifyResponse
//	@Failure		400		{object}	doorsdk.ErrorResponse	"Invalid request"
//	@Failure		422		{object}	doorsdk.ErrorResponse	"Share cannot be decoded"
//	@Router			/v1/shares/identify [post].
func (h *KeyHandler) Identify(w http.ResponseWriter, r *http.Request) {
	var req doorsdk.IdentifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	name, err := h.KeyService.Identify(req.Share)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, doorsdk.IdentifyResponse{UserName: name})
}

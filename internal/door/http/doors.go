package http

import (
	"net/http"

	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
)

type DoorHandler struct {
	DoorService *service.DoorService
}

// Create godoc
//
//	@Summary		Create a door
//	@Description	Registers a door and returns its share and secret. The secret is never returned again.
//	@Tags			Doors
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		doorsdk.CreateDoorRequest		true	"Door name"
//	@Success		201		{object}	doorsdk.CreatedDoorResponse	"Created door including its secret"
//	@Failure		400		{object}	doorsdk.ErrorResponse			"Invalid name"
//	@Failure		409		{object}	doorsdk.ErrorResponse			"Door exists"
//	@Router			/v1/doors [post].
func (h *DoorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req doorsdk.CreateDoorRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	d, err := h.DoorService.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, doorsdk.CreatedDoorResponse{
		Name:      d.Name,
		Share:     d.Share,
		Secret:    d.Secret,
		CreatedAt: d.CreatedAt,
	})
}

// Delete godoc
//
//	@Summary		Delete a door
//	@Description	Removes a door and every share issued for it.
//	@Tags			Doors
//	@Security		BearerAuth
//	@Param			name	path	string	true	"Door name"
//	@Success		204		"Deleted"
//	@Failure		404		{object}	doorsdk.ErrorResponse	"Unknown door"
//	@Router			/v1/doors/{name} [delete].
func (h *DoorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DoorService.Delete(r.Context(), r.PathValue("name")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Sync godoc
//
//	@Summary		Sync a door reader
//	@Description	Returns the door record and the revoked shares the reader must refuse. Authenticated by the door secret.
//	@Tags			Door readers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		doorsdk.DoorSecretRequest	true	"Door secret"
//	@Success		200		{object}	doorsdk.SyncResponse
//	@Failure		404		{object}	doorsdk.ErrorResponse	"No door owns this secret"
//	@Router			/v1/doors/sync [post].
func (h *DoorHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req doorsdk.DoorSecretRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	d, revoked, err := h.DoorService.Sync(r.Context(), req.Secret)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, doorsdk.SyncResponse{
		Door:        toDoorResponse(d),
		Blacklisted: toShareResponses(revoked),
	})
}

// Verify godoc
//
//	@Summary		Verify a presented share
//	@Description	Decides whether the holder of a scanned user share may open the door owning the secret. Refusals are reported in the body with status 200.
//	@Tags			Door readers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		doorsdk.VerifyRequest	true	"Door secret and scanned share"
//	@Success		200		{object}	doorsdk.VerifyResponse
//	@Failure		404		{object}	doorsdk.ErrorResponse	"No door owns this secret"
//	@Failure		422		{object}	doorsdk.ErrorResponse	"Share cannot be decoded"
//	@Router			/v1/doors/verify [post].
func (h *DoorHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req doorsdk.VerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	res, err := h.DoorService.Verify(r.Context(), req.Secret, req.Share)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, doorsdk.VerifyResponse{
		Granted:  res.Granted,
		UserName: res.UserName,
		ShareID:  res.ShareID,
		Reason:   res.Reason,
	})
}

// DeleteBySecret godoc
//
//	@Summary		Decommission a door
//	@Description	Removes the door owning the secret together with its shares.
//	@Tags			Door readers
//	@Accept			json
//	@Param			request	body	doorsdk.DoorSecretRequest	true	"Door secret"
//	@Success		204		"Deleted"
//	@Failure		404		{object}	doorsdk.ErrorResponse	"No door owns this secret"
//	@Router			/v1/doors [delete].
func (h *DoorHandler) DeleteBySecret(w http.ResponseWriter, r *http.Request) {
	var req doorsdk.DoorSecretRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.DoorService.DeleteBySecret(r.Context(), req.Secret); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

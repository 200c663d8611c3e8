package http

import (
	"net/http"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
)

type UserHandler struct {
	UserService *service.UserService
}

// Register godoc
//
//	@Summary		Register a user
//	@Description	Creates an account. When email validation is enabled the account stays inactive until the mailed code is confirmed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		doorsdk.RegisterRequest			true	"Account details"
//	@Success		201		{object}	doorsdk.UserResponse			"Created user"
//	@Failure		400		{object}	doorsdk.ValidationErrorResponse	"Invalid request"
//	@Failure		409		{object}	doorsdk.ErrorResponse			"User name or email in use"
//	@Failure		429		{object}	doorsdk.ErrorResponse			"Rate limit exceeded"
//	@Router			/v1/users [post].
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req doorsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	u, err := h.UserService.Register(r.Context(), domain.Registration{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// ValidateEmail godoc
//
//	@Summary		Confirm an email address
//	@Description	Activates the pending account the code was mailed to.
//	@Tags			Users
//	@Produce		json
//	@Param			code	query		string					true	"Validation code"
//	@Success		200		{object}	doorsdk.UserResponse	"Activated user"
//	@Failure		400		{object}	doorsdk.ErrorResponse	"Missing or unknown code"
//	@Router			/v1/users/validate-email [get].
func (h *UserHandler) ValidateEmail(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeBadRequest(w, "code is required")
		return
	}

	u, err := h.UserService.ValidateEmail(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// Me godoc
//
//	@Summary		Current user
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	doorsdk.UserResponse	"The authenticated user"
//	@Failure		401	{object}	doorsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	doorsdk.ErrorResponse	"Insufficient scope"
//	@Failure		404	{object}	doorsdk.ErrorResponse	"User no longer exists"
//	@Router			/v1/users/me [get].
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), httpx.UserName(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// DeleteMe godoc
//
//	@Summary		Delete account
//	@Description	Removes the authenticated user and every share issued to them.
//	@Tags			Users
//	@Security		BearerAuth
//	@Success		204	"Deleted"
//	@Failure		401	{object}	doorsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	doorsdk.ErrorResponse	"User no longer exists"
//	@Router			/v1/users/me [delete].
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), httpx.UserName(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

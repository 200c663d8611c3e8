package http

import (
	"net/http"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the first administrator.
//
//	@Summary		Bootstrap the door service
//	@Description	Creates the first, already active, administrator. Only available when a bootstrap token is configured and while no users exist.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token for authorization"
//	@Param			request				body		doorsdk.BootstrapRequest		true	"Administrator account"
//	@Success		201					{object}	doorsdk.BootstrapResponse		"Administrator created"
//	@Failure		400					{object}	doorsdk.ValidationErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	doorsdk.ErrorResponse			"Missing or invalid bootstrap token"
//	@Failure		404					{object}	doorsdk.ErrorResponse			"Bootstrap not enabled"
//	@Failure		409					{object}	doorsdk.ErrorResponse			"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	if h.BootstrapService.Token == "" {
		writeServiceError(w, r, service.ErrBootstrapDisabled)
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, doorsdk.ErrorCodeAccessDenied,
			"Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	var req doorsdk.BootstrapRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	l.Info("starting to bootstrap")
	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, domain.BootstrapData{
		AdminUserName: req.AdminUserName,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, doorsdk.BootstrapResponse{AdminUserName: admin.Name})
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

// writeServiceError maps a service error to a status code and error body.
// Unknown errors are logged and reported as server_error without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, doorsdk.ErrorCodeServerError
	desc := "internal server error"

	switch {
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrInvalidValidationCode):
		status, code, desc = http.StatusBadRequest, doorsdk.ErrorCodeInvalidRequest, err.Error()

	case errors.Is(err, service.ErrInvalidCredentials):
		status, code, desc = http.StatusUnauthorized, doorsdk.ErrorCodeInvalidGrant, err.Error()
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		status, code, desc = http.StatusUnauthorized, doorsdk.ErrorCodeAccessDenied, err.Error()

	case errors.Is(err, service.ErrInactiveUser),
		errors.Is(err, service.ErrNotShareOwner):
		status, code, desc = http.StatusForbidden, doorsdk.ErrorCodeAccessDenied, err.Error()

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrDoorNotFound),
		errors.Is(err, service.ErrShareNotFound),
		errors.Is(err, service.ErrBootstrapDisabled):
		status, code, desc = http.StatusNotFound, doorsdk.ErrorCodeNotFound, err.Error()

	case errors.Is(err, service.ErrLifecycleViolation),
		errors.Is(err, service.ErrShareBlacklisted),
		errors.Is(err, service.ErrDoorExists),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrBootstrapAlready):
		status, code, desc = http.StatusConflict, doorsdk.ErrorCodeConflict, err.Error()

	case errors.Is(err, vcshare.ErrInvalidPattern),
		errors.Is(err, vcshare.ErrShareLength):
		status, code, desc = http.StatusUnprocessableEntity, doorsdk.ErrorCodeShareUnreadable, err.Error()

	case errors.Is(err, service.ErrMailDelivery):
		desc = err.Error()
		slogx.FromContext(r.Context()).Error("mail delivery failed", slog.Any("error", err))

	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	}

	httpx.WriteError(w, status, code, desc)
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, doorsdk.ErrorCodeInvalidRequest, desc)
}

func writeValidationError(w http.ResponseWriter, errs map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, doorsdk.ValidationErrorResponse{
		Code:    doorsdk.ErrorCodeValidation,
		Message: "validation failed for some fields",
		Details: errs,
	})
}

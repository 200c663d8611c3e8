package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
)

type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP exchanges a login and password for an access token.
//
//	@Summary		Password login
//	@Description	Authenticates with a user name or email address and a password. The login is tried as an email address first.
//	@Tags			Token
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string					true	"User name or email address"
//	@Param			password	formData	string					true	"Password"
//	@Success		200			{object}	doorsdk.TokenResponse	"Access token"
//	@Failure		400			{object}	doorsdk.ErrorResponse	"Missing fields or malformed form"
//	@Failure		401			{object}	doorsdk.ErrorResponse	"Invalid credentials"
//	@Failure		403			{object}	doorsdk.ErrorResponse	"Account not activated"
//	@Failure		429			{object}	doorsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		writeBadRequest(w, "content-type must be application/x-www-form-urlencoded")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeBadRequest(w, "invalid form body")
		return
	}

	login := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if login == "" || password == "" {
		writeBadRequest(w, "username and password are required")
		return
	}

	tok, err := h.TokenService.Authenticate(r.Context(), login, password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, doorsdk.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   int(tok.ExpiresIn),
		Scope:       tok.Scope,
	})
}

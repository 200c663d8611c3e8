package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid user name or password")
	ErrInactiveUser       = errors.New("account has not been activated")
)

type TokenService struct {
	Store  store.Store
	Keys   *jwtx.KeyManager
	Issuer string
	TTL    time.Duration
}

// Authenticate checks a password login and issues an access token. login is
// tried as an email address first, then as a user name.
func (s *TokenService) Authenticate(ctx context.Context, login, password string) (domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	u, err := s.lookup(ctx, strings.TrimSpace(login))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return domain.AccessToken{}, err
		}
		cryptox.BurnPasswordCheck(password)
		l.Info("login failed", slog.String("reason", "unknown user"))
		return domain.AccessToken{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unusable", slog.String("user", u.Name), slog.Any("error", err))
		}
		l.Info("login failed", slog.String("user", u.Name), slog.String("reason", "bad password"))
		return domain.AccessToken{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return domain.AccessToken{}, ErrInactiveUser
	}

	return s.Issue(u)
}

// Issue signs an access token for u.
func (s *TokenService) Issue(u domain.User) (domain.AccessToken, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	scopes := u.Scopes()

	claims := jwtx.NewAccessClaims(u.Name, scopes, ttl, s.Issuer, time.Now().UTC())
	tok, err := s.Keys.GetSigner().Sign(claims)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}

	return domain.AccessToken{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl / time.Second),
		Scope:       strings.Join(scopes, " "),
	}, nil
}

func (s *TokenService) lookup(ctx context.Context, login string) (domain.User, error) {
	if login == "" {
		return domain.User{}, store.ErrNotFound
	}
	if strings.Contains(login, "@") {
		u, err := s.Store.Users().GetUserByEmail(ctx, login)
		if !errors.Is(err, store.ErrNotFound) {
			return u, err
		}
	}
	return s.Store.Users().GetUserByName(ctx, login)
}

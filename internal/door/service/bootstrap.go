package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap is disabled")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first administrator of an empty system.
type BootstrapService struct {
	Store store.Store
	Codec *vcshare.Codec
	Token string // empty disables bootstrap
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	return !empty, err
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req domain.BootstrapData) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if s.Token == "" {
		return domain.User{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	if err := checkName(s.Codec, req.AdminUserName); err != nil {
		return domain.User{}, err
	}
	if n := len(req.AdminPassword); n < minPasswordLen || n > maxPasswordLen {
		return domain.User{}, ErrInvalidPassword
	}
	hash, err := cryptox.HashPassword(req.AdminPassword)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	admin := domain.User{
		Name:         req.AdminUserName,
		Email:        req.AdminEmail,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      true,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, admin)
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
		}
		return domain.User{}, err
	}

	l.Info("system bootstrapped", slog.String("admin", admin.Name))
	return s.Store.Users().GetUserByName(ctx, admin.Name)
}

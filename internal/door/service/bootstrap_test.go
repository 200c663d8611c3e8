package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	data := domain.BootstrapData{AdminUserName: "root", AdminEmail: "root@example.test", AdminPassword: "toor"}

	disabled := &service.BootstrapService{Store: e.store, Codec: e.codec}
	_, err := disabled.Bootstrap(ctx, "", data)
	require.ErrorIs(t, err, service.ErrBootstrapDisabled)

	boot := &service.BootstrapService{Store: e.store, Codec: e.codec, Token: "let-me-in"}

	done, err := boot.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, done)

	_, err = boot.Bootstrap(ctx, "guess", data)
	require.ErrorIs(t, err, service.ErrBootstrapUnauthorized)

	admin, err := boot.Bootstrap(ctx, "let-me-in", data)
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)
	require.True(t, admin.IsActive)

	done, err = boot.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.True(t, done)

	data.AdminUserName = "root2"
	data.AdminEmail = "root2@example.test"
	_, err = boot.Bootstrap(ctx, "let-me-in", data)
	require.ErrorIs(t, err, service.ErrBootstrapAlready)
}

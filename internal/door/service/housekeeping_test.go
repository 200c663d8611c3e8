package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingDeletesStalePendingUsers(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.user(t, "active")
	e.users.EmailValidation = true
	e.user(t, "pending")

	hk := service.NewHousekeepingService(e.store, slogx.Discard(), 0, time.Hour)
	require.Equal(t, time.Hour, hk.Interval)

	n, err := hk.RunOnce(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Zero(t, n, "fresh accounts are kept")

	n, err = hk.RunOnce(ctx, time.Now().UTC().Add(2*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = e.users.Get(ctx, "pending")
	require.ErrorIs(t, err, service.ErrUserNotFound)
	_, err = e.users.Get(ctx, "active")
	require.NoError(t, err)
}

func TestHousekeepingStartStop(t *testing.T) {
	e := newEnv(t)
	hk := service.NewHousekeepingService(e.store, slogx.Discard(), time.Millisecond, 0)
	require.Equal(t, service.DefaultPendingUserTTL, hk.PendingTTL)

	hk.Start()
	time.Sleep(5 * time.Millisecond)
	hk.Stop()
}

package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestDoorCreate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	d := e.door(t, "大門")
	require.Len(t, d.Share, e.codec.ShareSize())
	require.Len(t, d.Secret, e.codec.Length)

	name, err := e.codec.DecodeIdentifier(d.Share)
	require.NoError(t, err)
	require.Equal(t, "大門", name)

	_, err = e.doors.Create(ctx, "大門")
	require.ErrorIs(t, err, service.ErrDoorExists)

	for _, bad := range []string{"", " front", "front\n", string(make([]byte, e.codec.Length+1))} {
		_, err := e.doors.Create(ctx, bad)
		require.ErrorIs(t, err, service.ErrInvalidName, "%q", bad)
	}

	got, err := e.doors.Get(ctx, "大門")
	require.NoError(t, err)
	require.Equal(t, d.Share, got.Share)

	list, err := e.doors.List(ctx, domain.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 1.0, testutil.ToFloat64(e.metrics.DoorsCreated))
}

func TestDoorVerify(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.user(t, "alice")
	front := e.door(t, "front")
	back := e.door(t, "back")

	sh, err := e.keys.RequestKey(ctx, "alice", "front")
	require.NoError(t, err)

	res, err := e.doors.Verify(ctx, front.Secret, sh.Value)
	require.NoError(t, err)
	require.False(t, res.Granted)
	require.Equal(t, service.DenyNotValidated, res.Reason)
	require.Equal(t, "alice", res.UserName)

	_, err = e.keys.Validate(ctx, sh.ID)
	require.NoError(t, err)

	res, err = e.doors.Verify(ctx, front.Secret, sh.Value)
	require.NoError(t, err)
	require.True(t, res.Granted)
	require.Equal(t, sh.ID, res.ShareID)

	res, err = e.doors.Verify(ctx, back.Secret, sh.Value)
	require.NoError(t, err)
	require.False(t, res.Granted)
	require.Equal(t, service.DenyWrongDoor, res.Reason)

	replacement, err := e.keys.Blacklist(ctx, sh.ID)
	require.NoError(t, err)

	res, err = e.doors.Verify(ctx, front.Secret, sh.Value)
	require.NoError(t, err)
	require.Equal(t, service.DenyRevoked, res.Reason)

	res, err = e.doors.Verify(ctx, front.Secret, replacement.Value)
	require.NoError(t, err)
	require.True(t, res.Granted)

	// A well formed share that was never issued.
	forged, err := e.codec.CreateUserShare("alice", front.Secret, front.Share)
	require.NoError(t, err)
	res, err = e.doors.Verify(ctx, front.Secret, forged)
	require.NoError(t, err)
	require.Equal(t, service.DenyUnknownShare, res.Reason)

	_, err = e.doors.Verify(ctx, front.Secret, make([]byte, e.codec.ShareSize()))
	require.ErrorIs(t, err, vcshare.ErrInvalidPattern)

	_, err = e.doors.Verify(ctx, front.Secret, []byte("short"))
	require.ErrorIs(t, err, vcshare.ErrShareLength)

	_, err = e.doors.Verify(ctx, make([]byte, e.codec.Length), replacement.Value)
	require.ErrorIs(t, err, service.ErrDoorNotFound)

	require.Equal(t, 2.0, testutil.ToFloat64(e.metrics.Verifications.WithLabelValues(metrics.VerifyGranted)))
	require.Equal(t, 2.0, testutil.ToFloat64(e.metrics.Verifications.WithLabelValues(metrics.VerifyUnreadable)))
}

func TestDoorSyncAndDeleteBySecret(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.user(t, "alice")
	front := e.door(t, "front")

	sh, err := e.keys.RequestKey(ctx, "alice", "front")
	require.NoError(t, err)

	d, revoked, err := e.doors.Sync(ctx, front.Secret)
	require.NoError(t, err)
	require.Equal(t, "front", d.Name)
	require.Empty(t, revoked)

	_, err = e.keys.Blacklist(ctx, sh.ID)
	require.NoError(t, err)

	_, revoked, err = e.doors.Sync(ctx, front.Secret)
	require.NoError(t, err)
	require.Len(t, revoked, 1)
	require.Equal(t, sh.ID, revoked[0].ID)

	_, _, err = e.doors.Sync(ctx, []byte("nope"))
	require.ErrorIs(t, err, service.ErrDoorNotFound)

	require.NoError(t, e.doors.DeleteBySecret(ctx, front.Secret))
	_, err = e.doors.Get(ctx, "front")
	require.ErrorIs(t, err, service.ErrDoorNotFound)

	all, err := e.keys.ListShares(ctx, domain.ShareFilter{UserName: "alice"})
	require.NoError(t, err)
	require.Empty(t, all, "shares are deleted with their door")

	require.ErrorIs(t, e.doors.Delete(ctx, "front"), service.ErrDoorNotFound)
}

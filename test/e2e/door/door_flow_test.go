package door_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/stretchr/testify/require"
)

// TestDoorAccessFlow walks a share from request to revocation against a
// running container.
func TestDoorAccessFlow(t *testing.T) {
	baseURL, cleanup := setupDoorContainer(t)
	defer cleanup()

	client := doorsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	admin := bootstrapService(t, client)
	alice := registerUser(t, client, "alice")

	door, err := admin.CreateDoor(ctx, "front")
	require.NoError(t, err)
	require.NotEmpty(t, door.Secret)

	share, err := alice.RequestKey(ctx, "front")
	require.NoError(t, err)
	require.Equal(t, doorsdk.ShareStateUnvalidated, share.State)

	// Pending shares are readable but do not open the door.
	res, err := client.VerifyShare(ctx, door.Secret, share.Share)
	require.NoError(t, err)
	require.False(t, res.Granted)
	require.Equal(t, "alice", res.UserName)

	_, err = admin.ValidateShare(ctx, share.ID)
	require.NoError(t, err)

	res, err = client.VerifyShare(ctx, door.Secret, share.Share)
	require.NoError(t, err)
	require.True(t, res.Granted)
	require.Equal(t, share.ID, res.ShareID)

	replacement, err := admin.BlacklistShare(ctx, share.ID)
	require.NoError(t, err)
	require.Equal(t, doorsdk.ShareStateValidated, replacement.State)

	res, err = client.VerifyShare(ctx, door.Secret, share.Share)
	require.NoError(t, err)
	require.False(t, res.Granted)

	res, err = client.VerifyShare(ctx, door.Secret, replacement.Share)
	require.NoError(t, err)
	require.True(t, res.Granted)

	synced, err := client.SyncDoor(ctx, door.Secret)
	require.NoError(t, err)
	require.Equal(t, "front", synced.Door.Name)
	require.Len(t, synced.Blacklisted, 1)
	require.Equal(t, share.ID, synced.Blacklisted[0].ID)

	// Retiring the door by its secret removes every share with it.
	require.NoError(t, client.DeleteDoorBySecret(ctx, door.Secret))
	_, err = client.SyncDoor(ctx, door.Secret)
	assertStatus(t, err, http.StatusNotFound, "Sync after delete")

	keys, err := alice.MyKeys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestBootstrapOnlyOnce(t *testing.T) {
	baseURL, cleanup := setupDoorContainer(t)
	defer cleanup()

	client := doorsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	_, err := client.Bootstrap(ctx, "wrong-token", doorsdk.BootstrapRequest{
		AdminUserName: adminUserName,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	})
	assertStatus(t, err, http.StatusUnauthorized, "Bootstrap with wrong token")

	bootstrapService(t, client)

	_, err = client.Bootstrap(ctx, bootstrapToken, doorsdk.BootstrapRequest{
		AdminUserName: "second",
		AdminEmail:    "second@example.test",
		AdminPassword: adminPassword,
	})
	assertStatus(t, err, http.StatusConflict, "Second bootstrap")
}

func TestAccountIsolation(t *testing.T) {
	baseURL, cleanup := setupDoorContainer(t)
	defer cleanup()

	client := doorsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	admin := bootstrapService(t, client)
	alice := registerUser(t, client, "alice")
	bob := registerUser(t, client, "bob")

	_, err := admin.CreateDoor(ctx, "lab")
	require.NoError(t, err)

	share, err := alice.RequestKey(ctx, "lab")
	require.NoError(t, err)

	err = bob.DeleteKey(ctx, share.ID)
	assertStatus(t, err, http.StatusForbidden, "Deleting another user's share")

	_, err = bob.ListUsers(ctx, 0, 10)
	require.Error(t, err, "Regular users must not list accounts")

	require.NoError(t, alice.DeleteAccount(ctx))

	shares, err := admin.ListShares(ctx, doorsdk.ShareFilter{DoorName: "lab"})
	require.NoError(t, err)
	require.Empty(t, shares)

	_, err = client.Login(ctx, "alice", "pw-alice-secret")
	assertStatus(t, err, http.StatusUnauthorized, "Login after account deletion")
}

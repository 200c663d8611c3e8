package app

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
users:
  - name: admin
    email: admin@example.test
    password: admin-pw
    admin: true
  - name: alice
    email: alice@example.test
    password: alice-pw
doors:
  - front
grants:
  - user: alice
    door: front
    validated: true
`

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	seed := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(seedYAML), 0o600))

	return Config{
		Issuer:               "door-app-test",
		BootstrapToken:       "open-sesame",
		NumKeys:              1,
		TokenTTL:             time.Minute,
		DatabaseFile:         filepath.Join(dir, "door.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		ShareLength:          50,
		SeedFile:             seed,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestNewWiresSeededApplication(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)
	client := doorsdk.NewSDKClient(srv.URL)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	alice, err := client.Login(ctx, "alice", "alice-pw")
	require.NoError(t, err)

	keys, err := alice.MyKeys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	require.Equal(t, "front", keys[0].DoorName)
	require.True(t, keys[0].IsValidated)

	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err, "pepper should be created on first start")
}

func TestNewSkipsSeedOnPopulatedDatabase(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, first.db.Close())

	// A second start against the same file must not trip over duplicates.
	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.db.Close() })

	users, err := second.db.Users().ListUsers(context.Background(), domain.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestNewRejectsBadSMTPConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SMTP.Host = "mail.example.test"
	cfg.SMTP.From = "not an address"

	_, err := New(cfg)
	require.Error(t, err)
}

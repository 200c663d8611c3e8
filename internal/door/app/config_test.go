package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "vcdoor", cfg.Issuer)
	require.Equal(t, 3, cfg.NumKeys)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, cfg.TokenTTL)
	require.Equal(t, vcshare.DefaultLength, cfg.ShareLength)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 465, cfg.SMTP.Port)
	require.False(t, cfg.EmailValidation)
	require.Empty(t, cfg.BootstrapToken)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DOOR_ISSUER", "front-office")
	t.Setenv("BOOTSTRAP_TOKEN", "s3cret")
	t.Setenv("DOOR_SHARE_LENGTH", "64")
	t.Setenv("DOOR_TOKEN_TTL", "5m")
	t.Setenv("EMAIL_VALIDATION", "true")
	t.Setenv("SMTP_HOST", "mail.example.test")
	t.Setenv("PENDING_USER_TTL", "90")
	t.Setenv("PORT", "9000")

	cfg := LoadConfig()

	require.Equal(t, "front-office", cfg.Issuer)
	require.Equal(t, "s3cret", cfg.BootstrapToken)
	require.Equal(t, 64, cfg.ShareLength)
	require.Equal(t, 5*time.Minute, cfg.TokenTTL)
	require.True(t, cfg.EmailValidation)
	require.Equal(t, "mail.example.test", cfg.SMTP.Host)
	require.Equal(t, 90*time.Minute, cfg.PendingUserTTL)
	require.Equal(t, 9000, cfg.Port)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("DOOR_SHARE_LENGTH", "-4")
	t.Setenv("DOOR_NUM_KEYS", "many")
	t.Setenv("EMAIL_VALIDATION", "perhaps")

	cfg := LoadConfig()

	require.Equal(t, vcshare.DefaultLength, cfg.ShareLength)
	require.Equal(t, 3, cfg.NumKeys)
	require.False(t, cfg.EmailValidation)
}

package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "password123"},
		{"symbols", "P@ssw0rd!#$%^&*()"},
		{"long", strings.Repeat("a", 100)},
		{"empty", ""},
		{"unicode", "王景誠🔒"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := cryptox.HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))

			require.NoError(t, cryptox.VerifyPassword(tt.password, hash))
			require.ErrorIs(t, cryptox.VerifyPassword(tt.password+"x", hash), cryptox.ErrPasswordMismatch)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := cryptox.HashPassword("same")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	for _, h := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=1,t=1,p=1$AAAA$AAAA",
		"$argon2id$v=16$m=1,t=1,p=1$AAAA$AAAA",
		"$argon2id$v=19$garbage$AAAA$AAAA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$AAAA",
	} {
		require.ErrorIs(t, cryptox.VerifyPassword("pw", h), cryptox.ErrInvalidHash, h)
	}
}

func TestBurnPasswordCheck(t *testing.T) {
	require.NotPanics(t, func() { cryptox.BurnPasswordCheck("anything") })
}

func TestGeneratePassword(t *testing.T) {
	pw, err := cryptox.GeneratePassword(16)
	require.NoError(t, err)
	require.Len(t, pw, 16)
	require.NotContains(t, pw, "0")
	require.NotContains(t, pw, "l")

	other, err := cryptox.GeneratePassword(16)
	require.NoError(t, err)
	require.NotEqual(t, pw, other)

	_, err = cryptox.GeneratePassword(0)
	require.Error(t, err)
}

func TestLoadPepper_PersistsAcrossReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	cryptox.SetPepperPath(path)

	require.NoError(t, cryptox.LoadPepper())
	hash, err := cryptox.HashPassword("hunter2")
	require.NoError(t, err)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// A fresh process reading the same file must accept the old hash.
	cryptox.SetPepperPath(path)
	require.NoError(t, cryptox.VerifyPassword("hunter2", hash))

	// A different pepper must not.
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	require.ErrorIs(t, cryptox.VerifyPassword("hunter2", hash), cryptox.ErrPasswordMismatch)
}

func TestLoadPepper_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	cryptox.SetPepperPath(path)
	require.Error(t, cryptox.LoadPepper())

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
}

package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewKeyManager(t *testing.T) {
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 2})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	require.Equal(t, 2, km.NumSigners())
	require.Len(t, km.KeySet.PublicJWKS().Keys, 2)

	for _, k := range km.KeySet.PublicJWKS().Keys {
		require.True(t, strings.HasPrefix(k.Kid, "vcdoor-"))
	}
}

func TestNewKeyManager_RequiresIssuer(t *testing.T) {
	_, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)
}

func TestNewKeyManager_ClampsNumKeys(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 3},
		{-4, 3},
		{1, 1},
		{42, 10},
	}
	for _, tt := range tests {
		km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: tt.in})
		require.NoError(t, err)
		require.Equal(t, tt.want, km.NumSigners(), "NumKeys=%d", tt.in)
	}
}

func TestKeyManager_AnySignerVerifies(t *testing.T) {
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 4, KeyPrefix: "door"})
	require.NoError(t, err)

	for range 20 {
		signer := km.GetSigner()
		require.True(t, strings.HasPrefix(signer.KID(), "door-"))

		token, err := signer.Sign(jwtx.NewAccessClaims("alice", []string{"keys:read"}, time.Minute, exampleIssuer, time.Now().UTC()))
		require.NoError(t, err)

		claims, err := km.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "alice", claims.Subject)
	}
}

package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	c := jwtx.NewAccessClaims("alice", []string{"keys:read"}, 30*time.Minute, exampleIssuer, now)

	require.Equal(t, "alice", c.Subject)
	require.Equal(t, exampleIssuer, c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(30*time.Minute), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.NotEqual(t, c.ID, jwtx.NewJTI())
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		claims jwtx.Claims
		leeway time.Duration
		want   error
	}{
		{
			name: "valid",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
				NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			}},
		},
		{
			name: "expired",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			}},
			want: jwtx.ErrExpired,
		},
		{
			name: "expired within leeway",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second)),
			}},
			leeway: time.Minute,
		},
		{
			name: "not yet valid",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
			}},
			want: jwtx.ErrNotYetValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.claims.ValidateExpiryWithLeeway(tt.leeway)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateIssuer(t *testing.T) {
	c := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "a"}}
	require.NoError(t, c.ValidateIssuer("a"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("b"), jwtx.ErrIssuer)
}

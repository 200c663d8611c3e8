package vcshare

import (
	"math/bits"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecretShareTableContract(t *testing.T) {
	t.Parallel()

	valid := append(append([]byte{}, whitePatterns...), blackPatterns...)
	for s := byte(0); s < 2; s++ {
		for u := byte(0); u < 2; u++ {
			for d := byte(0); d < 16; d++ {
				set := Candidates(s, u, d)
				if !containsByte(valid, d) {
					require.Empty(t, set, "door nibble %d is not a pattern", d)
					continue
				}
				require.NotEmpty(t, set, "s=%d u=%d d=%d", s, u, d)
				for _, c := range set {
					require.Equal(t, 3+int(s), bits.OnesCount8(d|c), "s=%d u=%d d=%d c=%d", s, u, d, c)
					require.Equal(t, 2+int(u), bits.OnesCount8(c), "s=%d u=%d d=%d c=%d", s, u, d, c)
				}
			}
		}
	}
}

func TestSecretShareTableAssociations(t *testing.T) {
	t.Parallel()

	// Fixed associations shared with every other implementation of the
	// scheme; stored shares only stay readable if these cells never change.
	want := map[[2]byte]map[byte][]byte{
		{0, 0}: {
			3: {5, 6, 9, 10}, 5: {3, 6, 9, 12}, 6: {3, 5, 10, 12}, 7: {3, 5, 6}, 9: {3, 5, 10, 12},
			10: {3, 6, 9, 12}, 11: {3, 9, 10}, 12: {5, 6, 9, 10}, 13: {5, 9, 12}, 14: {6, 10, 12},
		},
		{0, 1}: {
			3: {7, 11}, 5: {7, 13}, 6: {7, 14}, 7: {7}, 9: {11, 13},
			10: {11, 14}, 11: {11}, 12: {13, 14}, 13: {13}, 14: {14},
		},
		{1, 0}: {
			3: {12}, 5: {10}, 6: {9}, 7: {9, 10, 12}, 9: {6},
			10: {5}, 11: {5, 6, 12}, 12: {3}, 13: {3, 6, 10}, 14: {3, 5, 9},
		},
		{1, 1}: {
			3: {13, 14}, 5: {11, 14}, 6: {11, 13}, 7: {11, 13, 14}, 9: {7, 14},
			10: {7, 13}, 11: {7, 13, 14}, 12: {7, 11}, 13: {7, 11, 14}, 14: {7, 11, 13},
		},
	}

	for key, cells := range want {
		s, u := key[0], key[1]
		for d := byte(0); d < 16; d++ {
			exp, ok := cells[d]
			if !ok {
				require.Nil(t, Candidates(s, u, d), "s=%d u=%d d=%d", s, u, d)
				continue
			}
			require.Equal(t, exp, Candidates(s, u, d), "s=%d u=%d d=%d", s, u, d)
		}
	}
}

func TestCreateUserShareKnownDoor(t *testing.T) {
	t.Parallel()

	c := New(1)
	door := []byte{0xe5, 0xbe, 0x75, 0x9d}
	secret := []byte{28}

	user, err := c.CreateUserShare("1", secret, door)
	require.NoError(t, err)
	require.Len(t, user, 4)

	name, err := c.DecodeIdentifier(user)
	require.NoError(t, err)
	require.Equal(t, "1", name)

	got, err := c.DecodeOverlap(door, user)
	require.NoError(t, err)
	require.Equal(t, secret, got)
	require.True(t, c.VerifyOverlap(door, user, secret))
}

func TestSecretRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		user, door string
		length     int
	}{
		{"123", "abc", 4},
		{"王景誠", "大門", 20},
		{"王景誠", "大門", 50},
		{"", "lobby", 8},
	}
	for _, tc := range cases {
		t.Run(tc.user+"@"+tc.door, func(t *testing.T) {
			c := New(tc.length)

			door, secret, err := c.CreateDoorShareAndSecret(tc.door)
			require.NoError(t, err)
			require.Len(t, secret, tc.length)

			user, err := c.CreateUserShare(tc.user, secret, door)
			require.NoError(t, err)

			doorName, err := c.DecodeIdentifier(door)
			require.NoError(t, err)
			require.Equal(t, tc.door, doorName)

			userName, err := c.DecodeIdentifier(user)
			require.NoError(t, err)
			require.Equal(t, tc.user, userName)

			got, err := c.DecodeOverlap(door, user)
			require.NoError(t, err)
			require.Equal(t, secret, got)
		})
	}
}

func TestUserShareDoesNotLeakSecret(t *testing.T) {
	t.Parallel()

	c := New(DefaultLength)
	door, err := c.CreateDoorShare("vault")
	require.NoError(t, err)

	seen := map[string]bool{}
	for range 8 {
		secret, err := c.CreateSecret()
		require.NoError(t, err)

		user, err := c.CreateUserShare("alice", secret, door)
		require.NoError(t, err)

		name, err := c.DecodeIdentifier(user)
		require.NoError(t, err)
		require.Equal(t, "alice", name)
		seen[string(user)] = true
	}
	require.Len(t, seen, 8)

	secret, err := c.CreateSecret()
	require.NoError(t, err)
	a, err := c.CreateUserShare("alice", secret, door)
	require.NoError(t, err)
	b, err := c.CreateUserShare("alice", secret, door)
	require.NoError(t, err)
	require.NotEqual(t, a, b, "the same secret must yield different shares")
	require.True(t, c.VerifyOverlap(door, a, secret))
	require.True(t, c.VerifyOverlap(door, b, secret))
}

func TestVerifyOverlapRejects(t *testing.T) {
	t.Parallel()

	c := New(8)
	door, secret, err := c.CreateDoorShareAndSecret("gate")
	require.NoError(t, err)
	user, err := c.CreateUserShare("bob", secret, door)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := append([]byte{}, secret...)
		other[0] ^= 1
		require.False(t, c.VerifyOverlap(door, user, other))
	})

	t.Run("share for another door", func(t *testing.T) {
		otherDoor, otherSecret, err := c.CreateDoorShareAndSecret("gate")
		require.NoError(t, err)
		foreign, err := c.CreateUserShare("bob", otherSecret, otherDoor)
		require.NoError(t, err)

		got, err := c.DecodeOverlap(door, foreign)
		if err == nil {
			require.NotEqual(t, secret, got)
		}
		require.False(t, c.VerifyOverlap(door, foreign, secret))
	})

	t.Run("truncated share", func(t *testing.T) {
		require.False(t, c.VerifyOverlap(door, user[:len(user)-1], secret))
		_, err := c.DecodeOverlap(door, user[:len(user)-1])
		require.ErrorIs(t, err, ErrShareLength)
	})
}

func TestCreateUserShareErrors(t *testing.T) {
	t.Parallel()

	c := New(2)
	door, secret, err := c.CreateDoorShareAndSecret("ab")
	require.NoError(t, err)

	_, err = c.CreateUserShare("abc", secret, door)
	require.ErrorIs(t, err, ErrNameTooLong)

	_, err = c.CreateUserShare("a", secret[:1], door)
	require.ErrorIs(t, err, ErrShareLength)

	_, err = c.CreateUserShare("a", secret, door[:7])
	require.ErrorIs(t, err, ErrShareLength)

	corrupt := append([]byte{}, door...)
	corrupt[3] &= 0xf0
	_, err = c.CreateUserShare("a", secret, corrupt)
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestCodecConcurrentUse(t *testing.T) {
	t.Parallel()

	c := New(16)
	door, secret, err := c.CreateDoorShareAndSecret("shared")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := c.CreateUserShare("worker", secret, door)
			if err != nil {
				errs <- err
				return
			}
			if !c.VerifyOverlap(door, user, secret) {
				errs <- ErrInvalidPattern
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func containsByte(set []byte, b byte) bool {
	for _, v := range set {
		if v == b {
			return true
		}
	}
	return false
}

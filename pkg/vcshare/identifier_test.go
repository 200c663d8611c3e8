package vcshare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeIdentifierKnownShare(t *testing.T) {
	t.Parallel()

	c := New(1)
	name, err := c.DecodeIdentifier([]byte{0xe5, 0xbe, 0x75, 0x9d})
	require.NoError(t, err)
	require.Equal(t, "n", name)
}

func TestDoorShareFromSingleByte(t *testing.T) {
	t.Parallel()

	c := New(1)
	share, err := c.CreateDoorShare("0")
	require.NoError(t, err)
	require.Len(t, share, 4)

	raw, err := unpack(share, 1, decodePair)
	require.NoError(t, err)
	require.Equal(t, []byte{0x30}, raw)
}

func TestIdentifierRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		length int
	}{
		{"123", 4},
		{"abc", 4},
		{"abcd", 4},
		{"", 4},
		{"王景誠", 20},
		{"大門", 50},
		{"front-door", DefaultLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.length)
			share, err := c.EncodeIdentifier(tc.name)
			require.NoError(t, err)
			require.Len(t, share, 4*tc.length)

			got, err := c.DecodeIdentifier(share)
			require.NoError(t, err)
			require.Equal(t, tc.name, got)

			again, err := c.DecodeIdentifier(share)
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}
}

func TestEncodeIdentifierRejectsBadNames(t *testing.T) {
	t.Parallel()

	c := New(4)

	_, err := c.EncodeIdentifier("hello")
	require.ErrorIs(t, err, ErrNameTooLong)

	_, err = c.EncodeIdentifier("a\x00b")
	require.ErrorIs(t, err, ErrNameInvalid)

	// Four bytes of UTF-8 fill the buffer exactly.
	_, err = c.EncodeIdentifier("é!!")
	require.NoError(t, err)
}

func TestDecodeIdentifierErrors(t *testing.T) {
	t.Parallel()

	c := New(1)

	_, err := c.DecodeIdentifier([]byte{0xe5, 0xbe, 0x75})
	require.ErrorIs(t, err, ErrShareLength)

	_, err = c.DecodeIdentifier([]byte{0xe5, 0xbe, 0x75, 0x90})
	require.ErrorIs(t, err, ErrInvalidPattern)

	// 0xff on its own is not valid UTF-8: every bit set is a black nibble.
	_, err = c.DecodeIdentifier([]byte{0x77, 0x77, 0x77, 0x77})
	require.ErrorIs(t, err, ErrInvalidPattern)
}

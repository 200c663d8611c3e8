package vcshare

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeColor(t *testing.T) {
	t.Parallel()

	for _, n := range whitePatterns {
		bit, err := DecodeColor(n)
		require.NoError(t, err)
		require.Equal(t, byte(0), bit, "nibble %d", n)
	}
	for _, n := range blackPatterns {
		bit, err := DecodeColor(n)
		require.NoError(t, err)
		require.Equal(t, byte(1), bit, "nibble %d", n)
	}

	for _, n := range []byte{0, 1, 2, 4, 8, 15} {
		_, err := DecodeColor(n)
		require.ErrorIs(t, err, ErrInvalidPattern, "nibble %d", n)
	}
}

func TestEncodeBitCoversClass(t *testing.T) {
	t.Parallel()

	c := New(1)
	for bit, class := range map[byte][]byte{0: whitePatterns, 1: blackPatterns} {
		seen := map[byte]bool{}
		for range 600 {
			n, err := c.EncodeBit(bit)
			require.NoError(t, err)
			require.Contains(t, class, n)

			got, err := DecodeColor(n)
			require.NoError(t, err)
			require.Equal(t, bit, got)
			seen[n] = true
		}
		require.Len(t, seen, len(class), "every pattern of the class should be drawn")
	}
}

func TestPickerRejectsBiasedBytes(t *testing.T) {
	t.Parallel()

	// 252 is the first byte rejected for n=6.
	c := &Codec{Length: 1, Rand: bytes.NewReader([]byte{255, 252, 8})}
	p := c.newPicker()

	i, err := p.intn(6)
	require.NoError(t, err)
	require.Equal(t, 2, i)

	_, err = p.intn(6)
	require.Error(t, err, "exhausted entropy must surface as an error")
}

func TestDecodePair(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   byte
		want byte
	}{
		{0b01010101, 0b00},
		{0b01010111, 0b01},
		{0b11010011, 0b10},
		{0b11101101, 0b11},
	}
	for _, tc := range cases {
		got, err := decodePair(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "byte %08b", tc.in)
	}

	_, err := decodePair(0b10010000)
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestDecodeOverlapPair(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   byte
		want byte
	}{
		{0b01111110, 0b00},
		{0b11101111, 0b01},
		{0b11111011, 0b10},
		{0b11111111, 0b11},
	}
	for _, tc := range cases {
		got, err := decodeOverlapPair(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "byte %08b", tc.in)
	}

	// A lone white pattern can never appear after stacking.
	_, err := decodeOverlapPair(0b00110011)
	require.ErrorIs(t, err, ErrInvalidPattern)
}

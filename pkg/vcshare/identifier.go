package vcshare

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Bit j of input byte i lives in share byte i*4+j/2, in the low nibble when j
// is even and the high nibble when j is odd.
func position(i, j int) (offset int, shift uint) {
	return i*4 + j/2, uint(4 * (j % 2))
}

// EncodeIdentifier pads name with zero bytes to Length and encodes every bit,
// least significant first, as a random nibble.
func (c *Codec) EncodeIdentifier(name string) ([]byte, error) {
	if err := c.CheckName(name); err != nil {
		return nil, err
	}

	p := c.newPicker()
	share := make([]byte, c.ShareSize())
	for i := 0; i < c.Length; i++ {
		var b byte
		if i < len(name) {
			b = name[i]
		}
		for j := 0; j < 8; j++ {
			nibble, err := p.encodeBit(b >> j & 1)
			if err != nil {
				return nil, err
			}
			off, shift := position(i, j)
			share[off] |= nibble << shift
		}
	}
	return share, nil
}

// DecodeIdentifier recovers the name embedded in a single share.
func (c *Codec) DecodeIdentifier(share []byte) (string, error) {
	if len(share) != c.ShareSize() {
		return "", fmt.Errorf("%w: share is %d bytes, want %d", ErrShareLength, len(share), c.ShareSize())
	}

	raw, err := unpack(share, c.Length, decodePair)
	if err != nil {
		return "", err
	}
	if n := bytes.IndexByte(raw, 0); n >= 0 {
		raw = raw[:n]
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: identifier is not valid utf-8", ErrInvalidPattern)
	}
	return string(raw), nil
}

// unpack reassembles length bytes from a share, two bits per share byte.
func unpack(share []byte, length int, decode func(byte) (byte, error)) ([]byte, error) {
	out := make([]byte, length)
	for off, b := range share {
		pair, err := decode(b)
		if err != nil {
			return nil, fmt.Errorf("share byte %d: %w", off, err)
		}
		out[off/4] |= pair << (2 * (off % 4))
	}
	return out, nil
}

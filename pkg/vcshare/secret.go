package vcshare

import (
	"crypto/subtle"
	"fmt"
)

// CreateUserShare builds a share that decodes to userName on its own and to
// secret when stacked on doorShare. Each call draws fresh randomness.
func (c *Codec) CreateUserShare(userName string, secret, doorShare []byte) ([]byte, error) {
	if err := c.CheckName(userName); err != nil {
		return nil, err
	}
	if len(secret) != c.Length {
		return nil, fmt.Errorf("%w: secret is %d bytes, want %d", ErrShareLength, len(secret), c.Length)
	}
	if len(doorShare) != c.ShareSize() {
		return nil, fmt.Errorf("%w: door share is %d bytes, want %d", ErrShareLength, len(doorShare), c.ShareSize())
	}

	p := c.newPicker()
	share := make([]byte, c.ShareSize())
	for i := 0; i < c.Length; i++ {
		var name byte
		if i < len(userName) {
			name = userName[i]
		}
		for j := 0; j < 8; j++ {
			off, shift := position(i, j)
			door := doorShare[off] >> shift & 0x0f

			set := Candidates(secret[i]>>j&1, name>>j&1, door)
			if len(set) == 0 {
				return nil, fmt.Errorf("door share byte %d: %w: nibble %#x", off, ErrInvalidPattern, door)
			}
			nibble, err := p.choose(set)
			if err != nil {
				return nil, err
			}
			share[off] |= nibble << shift
		}
	}
	return share, nil
}

// DecodeOverlap stacks the two shares and reads the secret they reveal.
func (c *Codec) DecodeOverlap(doorShare, userShare []byte) ([]byte, error) {
	if len(doorShare) != c.ShareSize() || len(userShare) != c.ShareSize() {
		return nil, fmt.Errorf("%w: shares are %d and %d bytes, want %d",
			ErrShareLength, len(doorShare), len(userShare), c.ShareSize())
	}

	stacked := make([]byte, len(doorShare))
	for i := range doorShare {
		stacked[i] = doorShare[i] | userShare[i]
	}
	return unpack(stacked, c.Length, decodeOverlapPair)
}

// VerifyOverlap reports whether stacking userShare on doorShare reveals
// secret. Unreadable shares never verify.
func (c *Codec) VerifyOverlap(doorShare, userShare, secret []byte) bool {
	got, err := c.DecodeOverlap(doorShare, userShare)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, secret) == 1
}

package vcshare

import (
	"fmt"
	"math/bits"
)

// Nibble classes. The members of a class differ only in which bits are set.
var (
	whitePatterns = []byte{3, 5, 6, 9, 10, 12}
	blackPatterns = []byte{7, 11, 13, 14}
)

// EncodeBit returns a random nibble whose population encodes bit: two set
// bits for 0, three for 1.
func (c *Codec) EncodeBit(bit byte) (byte, error) {
	return c.newPicker().encodeBit(bit)
}

func (p *picker) encodeBit(bit byte) (byte, error) {
	if bit&1 == 0 {
		return p.choose(whitePatterns)
	}
	return p.choose(blackPatterns)
}

// DecodeColor returns the bit carried by a nibble.
func DecodeColor(nibble byte) (byte, error) {
	switch bits.OnesCount8(nibble & 0x0f) {
	case 2:
		return 0, nil
	case 3:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: nibble %#x", ErrInvalidPattern, nibble&0x0f)
	}
}

// decodeOverlapColor is DecodeColor shifted up by one: stacking two shares
// can only ever add bits.
func decodeOverlapColor(nibble byte) (byte, error) {
	switch bits.OnesCount8(nibble & 0x0f) {
	case 3:
		return 0, nil
	case 4:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: overlapped nibble %#x", ErrInvalidPattern, nibble&0x0f)
	}
}

// decodePair reads the two bits stored in one share byte. The low nibble
// carries the lower bit.
func decodePair(b byte) (byte, error) {
	return decodePairWith(b, DecodeColor)
}

func decodeOverlapPair(b byte) (byte, error) {
	return decodePairWith(b, decodeOverlapColor)
}

func decodePairWith(b byte, decode func(byte) (byte, error)) (byte, error) {
	lo, err := decode(b & 0x0f)
	if err != nil {
		return 0, err
	}
	hi, err := decode(b >> 4)
	if err != nil {
		return 0, err
	}
	return hi<<1 | lo, nil
}

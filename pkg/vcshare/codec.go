package vcshare

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultLength is the identifier and secret length in bytes. Shares are four
// times as long.
const DefaultLength = 50

var (
	// ErrInvalidPattern reports a nibble whose population is outside the
	// expected range. It indicates a corrupted or tampered share.
	ErrInvalidPattern = errors.New("vcshare: invalid bit pattern")
	// ErrNameTooLong reports an identifier longer than the configured length.
	ErrNameTooLong = errors.New("vcshare: name exceeds share length")
	// ErrNameInvalid reports an identifier that cannot survive a round trip.
	ErrNameInvalid = errors.New("vcshare: name contains a NUL byte")
	// ErrShareLength reports a share or secret buffer of the wrong size.
	ErrShareLength = errors.New("vcshare: buffer has wrong length")
)

// Codec encodes names and secrets into shares of a fixed length.
// A Codec holds no mutable state and is safe for concurrent use.
type Codec struct {
	// Length is L, the number of name/secret bytes carried by one share.
	Length int

	// Rand is the entropy source. Nil means crypto/rand.
	Rand io.Reader
}

// New returns a Codec for the given length. Non-positive lengths fall back to
// DefaultLength.
func New(length int) *Codec {
	if length <= 0 {
		length = DefaultLength
	}
	return &Codec{Length: length}
}

// ShareSize is the size of a door or user share in bytes.
func (c *Codec) ShareSize() int { return 4 * c.Length }

// CheckName reports whether name can be embedded in a share.
func (c *Codec) CheckName(name string) error {
	if len(name) > c.Length {
		return fmt.Errorf("%w: %d > %d bytes", ErrNameTooLong, len(name), c.Length)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return ErrNameInvalid
	}
	return nil
}

// CreateSecret returns Length cryptographically random bytes.
func (c *Codec) CreateSecret() ([]byte, error) {
	secret := make([]byte, c.Length)
	if _, err := io.ReadFull(c.source(), secret); err != nil {
		return nil, fmt.Errorf("vcshare: read entropy: %w", err)
	}
	return secret, nil
}

// CreateDoorShare embeds a door name in a fresh share.
func (c *Codec) CreateDoorShare(doorName string) ([]byte, error) {
	return c.EncodeIdentifier(doorName)
}

// CreateDoorShareAndSecret produces everything a new door needs. The two
// values are generated independently.
func (c *Codec) CreateDoorShareAndSecret(doorName string) (share, secret []byte, err error) {
	share, err = c.CreateDoorShare(doorName)
	if err != nil {
		return nil, nil, err
	}
	secret, err = c.CreateSecret()
	if err != nil {
		return nil, nil, err
	}
	return share, secret, nil
}

func (c *Codec) source() io.Reader {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.Reader
}

// picker draws uniform indexes from a buffered entropy stream. One picker is
// created per call so Codec stays free of shared state.
type picker struct {
	r *bufio.Reader
}

func (c *Codec) newPicker() *picker {
	return &picker{r: bufio.NewReaderSize(c.source(), 512)}
}

// intn returns a uniform integer in [0, n) for 0 < n <= 256 by rejection
// sampling a single byte.
func (p *picker) intn(n int) (int, error) {
	if n == 1 {
		return 0, nil
	}
	limit := 256 - 256%n
	for {
		b, err := p.r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("vcshare: read entropy: %w", err)
		}
		if int(b) < limit {
			return int(b) % n, nil
		}
	}
}

// choose returns a uniformly selected member of set.
func (p *picker) choose(set []byte) (byte, error) {
	i, err := p.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

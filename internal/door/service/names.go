package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

var ErrInvalidName = errors.New("invalid name")

// checkName accepts names that fit into a share and carry no surrounding
// whitespace or control characters.
func checkName(codec *vcshare.Codec, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: leading or trailing whitespace", ErrInvalidName)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: control character", ErrInvalidName)
	}
	if err := codec.CheckName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	return nil
}

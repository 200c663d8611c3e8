package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
	"gopkg.in/yaml.v2"
)

var ErrInvalidFixture = errors.New("invalid seed fixture")

// SeedService loads a YAML fixture of users, doors and grants into an empty
// database.
type SeedService struct {
	Store   store.Store
	Codec   *vcshare.Codec
	Metrics *metrics.Metrics
}

// LoadFixture parses path. Unknown keys are rejected.
func LoadFixture(path string) (domain.Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(raw)
}

func ParseFixture(raw []byte) (domain.Fixture, error) {
	var f domain.Fixture
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return domain.Fixture{}, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	return f, nil
}

// ApplyIfEmpty applies the fixture at path when no user exists yet. It
// reports whether anything was applied.
func (s *SeedService) ApplyIfEmpty(ctx context.Context, path string) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil || !empty {
		return false, err
	}
	f, err := LoadFixture(path)
	if err != nil {
		return false, err
	}
	if err := s.Apply(ctx, f); err != nil {
		return false, err
	}
	return true, nil
}

// Apply creates everything in f within one transaction.
func (s *SeedService) Apply(ctx context.Context, f domain.Fixture) error {
	if err := s.check(f); err != nil {
		return err
	}

	var issued int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, fu := range f.Users {
			hash, err := cryptox.HashPassword(fu.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", fu.Name, err)
			}
			err = tx.Users().CreateUser(ctx, domain.User{
				Name:         fu.Name,
				Email:        fu.Email,
				PasswordHash: hash,
				IsActive:     true,
				IsAdmin:      fu.Admin,
			})
			if err != nil {
				return fmt.Errorf("user %s: %w", fu.Name, err)
			}
		}

		doors := make(map[string]domain.Door, len(f.Doors))
		for _, name := range f.Doors {
			d, err := createDoor(ctx, tx, s.Codec, s.Metrics, name)
			if err != nil {
				return fmt.Errorf("door %s: %w", name, err)
			}
			doors[name] = d
		}

		for _, g := range f.Grants {
			door, ok := doors[g.DoorName]
			if !ok {
				var err error
				if door, err = tx.Doors().GetDoorByName(ctx, g.DoorName); err != nil {
					return fmt.Errorf("grant %s on %s: %w", g.UserName, g.DoorName, notFound(err, ErrDoorNotFound))
				}
			}
			if _, err := issueShare(ctx, tx, s.Codec, s.Metrics, g.UserName, door, g.Validated); err != nil {
				return fmt.Errorf("grant %s on %s: %w", g.UserName, g.DoorName, err)
			}
			issued++
		}
		return nil
	})
	if err != nil {
		return err
	}

	for range issued {
		s.Metrics.ShareIssued(metrics.IssueSeed)
	}
	slogx.FromContext(ctx).Info("seed fixture applied",
		slog.Int("users", len(f.Users)),
		slog.Int("doors", len(f.Doors)),
		slog.Int("grants", issued))
	return nil
}

func (s *SeedService) check(f domain.Fixture) error {
	for _, u := range f.Users {
		if err := checkName(s.Codec, u.Name); err != nil {
			return fmt.Errorf("%w: user %q: %w", ErrInvalidFixture, u.Name, err)
		}
		if u.Password == "" {
			return fmt.Errorf("%w: user %q has no password", ErrInvalidFixture, u.Name)
		}
	}
	for _, d := range f.Doors {
		if err := checkName(s.Codec, d); err != nil {
			return fmt.Errorf("%w: door %q: %w", ErrInvalidFixture, d, err)
		}
	}
	return nil
}

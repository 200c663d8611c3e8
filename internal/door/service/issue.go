package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/idx"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

// maxShareAttempts bounds regeneration after a random share collides with a
// stored one.
const maxShareAttempts = 5

// ErrShareGeneration is returned when every attempt produced a colliding value.
var ErrShareGeneration = errors.New("could not generate a unique share")

// issueShare generates a user share against door and stores it on st, which
// is normally a transaction.
func issueShare(
	ctx context.Context,
	st store.Store,
	codec *vcshare.Codec,
	m *metrics.Metrics,
	userName string,
	door domain.Door,
	validated bool,
) (domain.Share, error) {
	for attempt := 1; attempt <= maxShareAttempts; attempt++ {
		value, err := codec.CreateUserShare(userName, door.Secret, door.Share)
		if err != nil {
			return domain.Share{}, fmt.Errorf("create user share: %w", err)
		}

		sh := domain.Share{
			ID:          idx.New().String(),
			UserName:    userName,
			DoorName:    door.Name,
			Value:       value,
			IsValidated: validated,
		}
		err = st.Shares().CreateShare(ctx, sh)
		switch {
		case err == nil:
			return st.Shares().GetShareByID(ctx, sh.ID)
		case errors.Is(err, store.ErrDuplicateShare):
			m.ShareCollision()
			slogx.FromContext(ctx).Warn("generated share collided, regenerating",
				slog.String("door", door.Name), slog.Int("attempt", attempt))
		default:
			return domain.Share{}, err
		}
	}
	return domain.Share{}, ErrShareGeneration
}

// createDoor generates a door share and secret for name and stores the door.
func createDoor(
	ctx context.Context,
	st store.Store,
	codec *vcshare.Codec,
	m *metrics.Metrics,
	name string,
) (domain.Door, error) {
	for attempt := 1; attempt <= maxShareAttempts; attempt++ {
		share, secret, err := codec.CreateDoorShareAndSecret(name)
		if err != nil {
			return domain.Door{}, fmt.Errorf("create door share: %w", err)
		}

		err = st.Doors().CreateDoor(ctx, domain.Door{Name: name, Share: share, Secret: secret})
		switch {
		case err == nil:
			return st.Doors().GetDoorByName(ctx, name)
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Door{}, ErrDoorExists
		case errors.Is(err, store.ErrDuplicateShare):
			m.ShareCollision()
			slogx.FromContext(ctx).Warn("generated door share collided, regenerating",
				slog.String("door", name), slog.Int("attempt", attempt))
		default:
			return domain.Door{}, err
		}
	}
	return domain.Door{}, ErrShareGeneration
}

// notFound maps store.ErrNotFound onto a service level error.
func notFound(err, target error) error {
	if errors.Is(err, store.ErrNotFound) {
		return target
	}
	return err
}

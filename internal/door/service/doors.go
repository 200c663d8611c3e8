package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

var (
	ErrDoorNotFound = errors.New("door not found")
	ErrDoorExists   = errors.New("door already exists")
)

// Reasons a verification is denied.
const (
	DenyUnknownShare = "unknown share"
	DenyWrongDoor    = "share issued for another door"
	DenyRevoked      = "share revoked"
	DenyNotValidated = "share not validated"
	DenyMismatch     = "share does not reveal the door secret"
)

type DoorService struct {
	Store   store.Store
	Codec   *vcshare.Codec
	Metrics *metrics.Metrics
}

// Create registers a door with a fresh share and secret. The returned door
// is the only place the secret leaves the service.
func (s *DoorService) Create(ctx context.Context, name string) (domain.Door, error) {
	if err := checkName(s.Codec, name); err != nil {
		return domain.Door{}, err
	}

	door, err := createDoor(ctx, s.Store, s.Codec, s.Metrics, name)
	if err != nil {
		return domain.Door{}, err
	}

	s.Metrics.DoorCreated()
	slogx.FromContext(ctx).Info("door created", slog.String("door", name))
	return door, nil
}

// Sync is called by a door reader holding the secret. It returns the door
// record and every revoked share so the reader can refuse them offline.
func (s *DoorService) Sync(ctx context.Context, secret []byte) (domain.Door, []domain.Share, error) {
	door, err := s.bySecret(ctx, secret)
	if err != nil {
		return domain.Door{}, nil, err
	}
	revoked, err := s.Store.Shares().ListBlacklistedShares(ctx, door.Name)
	if err != nil {
		return domain.Door{}, nil, err
	}
	return door, revoked, nil
}

// DeleteBySecret lets a reader decommission its own door.
func (s *DoorService) DeleteBySecret(ctx context.Context, secret []byte) error {
	door, err := s.bySecret(ctx, secret)
	if err != nil {
		return err
	}
	return s.Delete(ctx, door.Name)
}

// Delete removes a door together with every share issued for it.
func (s *DoorService) Delete(ctx context.Context, name string) error {
	if err := s.Store.Doors().DeleteDoor(ctx, name); err != nil {
		return notFound(err, ErrDoorNotFound)
	}
	slogx.FromContext(ctx).Info("door deleted", slog.String("door", name))
	return nil
}

func (s *DoorService) Get(ctx context.Context, name string) (domain.Door, error) {
	d, err := s.Store.Doors().GetDoorByName(ctx, name)
	if err != nil {
		return domain.Door{}, notFound(err, ErrDoorNotFound)
	}
	return d, nil
}

func (s *DoorService) List(ctx context.Context, page domain.Page) ([]domain.Door, error) {
	return s.Store.Doors().ListDoors(ctx, page.Normalize())
}

// Verify decides whether the holder of userShare may open the door owning
// secret. Shares that cannot be decoded fail with vcshare.ErrInvalidPattern
// or vcshare.ErrShareLength; every other refusal is a denied result.
func (s *DoorService) Verify(ctx context.Context, secret, userShare []byte) (domain.VerifyResult, error) {
	l := slogx.FromContext(ctx)

	door, err := s.bySecret(ctx, secret)
	if err != nil {
		return domain.VerifyResult{}, err
	}

	name, err := s.Codec.DecodeIdentifier(userShare)
	if err != nil {
		s.Metrics.Verification(metrics.VerifyUnreadable)
		l.Warn("unreadable share presented", slog.String("door", door.Name), slog.Any("error", err))
		return domain.VerifyResult{}, fmt.Errorf("decode presented share: %w", err)
	}

	res := s.judge(ctx, door, name, userShare)
	if res.Granted {
		s.Metrics.Verification(metrics.VerifyGranted)
		l.Info("access granted", slog.String("door", door.Name), slog.String("user", name), slog.String("share_id", res.ShareID))
	} else {
		s.Metrics.Verification(metrics.VerifyDenied)
		l.Warn("access denied", slog.String("door", door.Name), slog.String("user", name), slog.String("reason", res.Reason))
	}
	return res, nil
}

func (s *DoorService) judge(ctx context.Context, door domain.Door, name string, userShare []byte) domain.VerifyResult {
	deny := func(reason string) domain.VerifyResult {
		return domain.VerifyResult{UserName: name, Reason: reason}
	}

	rec, err := s.Store.Shares().GetShareByValue(ctx, userShare)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("lookup presented share", slog.Any("error", err))
		}
		return deny(DenyUnknownShare)
	}

	res := deny("")
	res.ShareID = rec.ID
	switch {
	case rec.DoorName != door.Name:
		res.Reason = DenyWrongDoor
	case rec.IsBlacklisted:
		res.Reason = DenyRevoked
	case !rec.IsValidated:
		res.Reason = DenyNotValidated
	case rec.UserName != name || !s.Codec.VerifyOverlap(door.Share, userShare, door.Secret):
		res.Reason = DenyMismatch
	default:
		res.Granted = true
	}
	return res
}

func (s *DoorService) bySecret(ctx context.Context, secret []byte) (domain.Door, error) {
	if len(secret) != s.Codec.Length {
		return domain.Door{}, ErrDoorNotFound
	}
	d, err := s.Store.Doors().GetDoorBySecret(ctx, secret)
	if err != nil {
		return domain.Door{}, notFound(err, ErrDoorNotFound)
	}
	return d, nil
}

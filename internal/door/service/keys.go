package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

var (
	// ErrLifecycleViolation means the pair already holds an active share.
	ErrLifecycleViolation = errors.New("an active key already exists for this user and door")
	ErrShareBlacklisted   = errors.New("share is blacklisted")
	ErrShareNotFound      = errors.New("share not found")
	ErrNotShareOwner      = errors.New("share belongs to another user")
)

// KeyService runs the share lifecycle: request, validate, blacklist and
// reissue. Every transition runs in a single transaction, and the store's
// partial unique index backs the one-active-share rule.
type KeyService struct {
	Store   store.Store
	Codec   *vcshare.Codec
	Metrics *metrics.Metrics
}

// RequestKey issues a new unvalidated share for userName on doorName.
func (s *KeyService) RequestKey(ctx context.Context, userName, doorName string) (domain.Share, error) {
	l := slogx.FromContext(ctx)

	var out domain.Share
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByName(ctx, userName); err != nil {
			return notFound(err, ErrUserNotFound)
		}
		door, err := tx.Doors().GetDoorByName(ctx, doorName)
		if err != nil {
			return notFound(err, ErrDoorNotFound)
		}

		switch _, err := tx.Shares().GetActiveShare(ctx, userName, doorName); {
		case err == nil:
			return ErrLifecycleViolation
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		out, err = issueShare(ctx, tx, s.Codec, s.Metrics, userName, door, false)
		return err
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race against a concurrent request for the same pair.
		err = ErrLifecycleViolation
	}
	if err != nil {
		return domain.Share{}, err
	}

	s.Metrics.ShareIssued(metrics.IssueRequested)
	l.Info("key requested",
		slog.String("share_id", out.ID),
		slog.String("user", userName),
		slog.String("door", doorName))
	return out, nil
}

// Validate moves a share from unvalidated to validated. Validating a share
// twice is a no-op.
func (s *KeyService) Validate(ctx context.Context, shareID string) (domain.Share, error) {
	var (
		out     domain.Share
		changed bool
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		sh, err := tx.Shares().GetShareByID(ctx, shareID)
		if err != nil {
			return notFound(err, ErrShareNotFound)
		}
		switch sh.State() {
		case domain.ShareBlacklisted:
			return ErrShareBlacklisted
		case domain.ShareValidated:
			out = sh
			return nil
		}

		if err := tx.Shares().MarkValidated(ctx, shareID); err != nil {
			return notFound(err, ErrShareBlacklisted)
		}
		changed = true
		out, err = tx.Shares().GetShareByID(ctx, shareID)
		return err
	})
	if err != nil {
		return domain.Share{}, err
	}

	if changed {
		s.Metrics.ShareValidated()
		slogx.FromContext(ctx).Info("share validated",
			slog.String("share_id", shareID),
			slog.String("user", out.UserName),
			slog.String("door", out.DoorName))
	}
	return out, nil
}

// Blacklist revokes a share and issues a validated replacement for the same
// user and door. It returns the replacement.
func (s *KeyService) Blacklist(ctx context.Context, shareID string) (domain.Share, error) {
	return s.rotate(ctx, shareID, "", metrics.IssueBlacklist)
}

// Reissue lets a user rotate one of their own shares. The replacement keeps
// the validation state of the revoked share so that rotation cannot skip
// admin approval.
func (s *KeyService) Reissue(ctx context.Context, userName, shareID string) (domain.Share, error) {
	return s.rotate(ctx, shareID, userName, metrics.IssueReissue)
}

func (s *KeyService) rotate(ctx context.Context, shareID, owner, reason string) (domain.Share, error) {
	var old, out domain.Share
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		old, err = tx.Shares().GetShareByID(ctx, shareID)
		if err != nil {
			return notFound(err, ErrShareNotFound)
		}
		if owner != "" && old.UserName != owner {
			return ErrNotShareOwner
		}
		if old.IsBlacklisted {
			return ErrShareBlacklisted
		}

		door, err := tx.Doors().GetDoorByName(ctx, old.DoorName)
		if err != nil {
			return notFound(err, ErrDoorNotFound)
		}
		if err := tx.Shares().MarkBlacklisted(ctx, shareID); err != nil {
			return notFound(err, ErrShareBlacklisted)
		}

		validated := true
		if owner != "" {
			validated = old.IsValidated
		}
		out, err = issueShare(ctx, tx, s.Codec, s.Metrics, old.UserName, door, validated)
		return err
	})
	if err != nil {
		return domain.Share{}, err
	}

	s.Metrics.ShareBlacklisted()
	s.Metrics.ShareIssued(reason)
	slogx.FromContext(ctx).Info("share rotated",
		slog.String("reason", reason),
		slog.String("old_share_id", old.ID),
		slog.String("share_id", out.ID),
		slog.String("user", out.UserName),
		slog.String("door", out.DoorName))
	return out, nil
}

// MyKeys lists the keys a user can present at a door.
func (s *KeyService) MyKeys(ctx context.Context, userName string) ([]domain.Share, error) {
	return s.Store.Shares().ListUserKeys(ctx, userName)
}

// DeleteKey removes one of the caller's share records.
func (s *KeyService) DeleteKey(ctx context.Context, userName, shareID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		sh, err := tx.Shares().GetShareByID(ctx, shareID)
		if err != nil {
			return notFound(err, ErrShareNotFound)
		}
		if sh.UserName != userName {
			return ErrNotShareOwner
		}
		return notFound(tx.Shares().DeleteShare(ctx, shareID), ErrShareNotFound)
	})
}

func (s *KeyService) GetShare(ctx context.Context, shareID string) (domain.Share, error) {
	sh, err := s.Store.Shares().GetShareByID(ctx, shareID)
	if err != nil {
		return domain.Share{}, notFound(err, ErrShareNotFound)
	}
	return sh, nil
}

// ListShares is the admin view over every share record.
func (s *KeyService) ListShares(ctx context.Context, f domain.ShareFilter) ([]domain.Share, error) {
	f.Page = f.Page.Normalize()
	return s.Store.Shares().ListShares(ctx, f)
}

// Identify reads the name embedded in a single share.
func (s *KeyService) Identify(share []byte) (string, error) {
	return s.Codec.DecodeIdentifier(share)
}

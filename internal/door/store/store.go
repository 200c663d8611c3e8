package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrDuplicateShare reports that a generated share or secret collides with
	// a stored one. Callers regenerate and retry.
	ErrDuplicateShare = errors.New("store: duplicate share value")
)

// Store is the root data access interface. Drivers expose sub-repositories
// instead of flat methods so a Tx-scoped store cannot start another
// transaction by accident.
type Store interface {
	Users() Users
	Doors() Doors
	Shares() Shares

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByName(ctx context.Context, name string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByValidationCode finds the pending user holding a code fingerprint.
	GetUserByValidationCode(ctx context.Context, codeHash string) (domain.User, error)

	// CreateUser fails with ErrAlreadyExists when the name or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ActivateUser sets is_active and clears the validation code.
	ActivateUser(ctx context.Context, name string) error

	// DeleteUser cascades to shares (per schema).
	DeleteUser(ctx context.Context, name string) error

	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)

	// DeletePendingUsers removes inactive users that still hold a validation
	// code and were created before the cutoff.
	DeletePendingUsers(ctx context.Context, before time.Time) (int64, error)
}

type Doors interface {
	GetDoorByName(ctx context.Context, name string) (domain.Door, error)
	GetDoorBySecret(ctx context.Context, secret []byte) (domain.Door, error)

	// CreateDoor fails with ErrAlreadyExists for a taken name and
	// ErrDuplicateShare when the share or secret collides.
	CreateDoor(ctx context.Context, d domain.Door) error

	// DeleteDoor cascades to shares (per schema).
	DeleteDoor(ctx context.Context, name string) error

	ListDoors(ctx context.Context, page domain.Page) ([]domain.Door, error)
}

type Shares interface {
	GetShareByID(ctx context.Context, id string) (domain.Share, error)
	GetShareByValue(ctx context.Context, value []byte) (domain.Share, error)

	// GetActiveShare returns the non-blacklisted record for a pair, if any.
	GetActiveShare(ctx context.Context, userName, doorName string) (domain.Share, error)

	// CreateShare fails with ErrAlreadyExists when the pair already has an
	// active record and ErrDuplicateShare when the value collides.
	CreateShare(ctx context.Context, s domain.Share) error

	// MarkValidated flips is_validated on a non-blacklisted record.
	// Returns ErrNotFound when no such record exists.
	MarkValidated(ctx context.Context, id string) error

	// MarkBlacklisted flips is_blacklisted on a non-blacklisted record.
	// Returns ErrNotFound when no such record exists.
	MarkBlacklisted(ctx context.Context, id string) error

	DeleteShare(ctx context.Context, id string) error

	ListShares(ctx context.Context, filter domain.ShareFilter) ([]domain.Share, error)

	// ListUserKeys returns validated, non-blacklisted shares of a user.
	ListUserKeys(ctx context.Context, userName string) ([]domain.Share, error)

	// ListBlacklistedShares returns every revoked share of a door.
	ListBlacklistedShares(ctx context.Context, doorName string) ([]domain.Share, error)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/internal/door/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// FileDSN builds a DSN for a database file. The pragmas are applied by the
// driver on every new connection, so foreign keys hold across the pool.
// Transactions start with BEGIN IMMEDIATE: a check-then-write that loses a
// race waits on busy_timeout and then sees the winner's row, instead of
// failing to upgrade a stale read snapshot with SQLITE_BUSY.
func FileDSN(path string) string {
	v := url.Values{}
	v.Add("_txlock", "immediate")
	v.Add("_pragma", "busy_timeout(5000)")
	v.Add("_pragma", "journal_mode(WAL)")
	v.Add("_pragma", "foreign_keys(1)")
	return fmt.Sprintf("file:%s?%s", path, v.Encode())
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Safe to call even after commit
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users   { return &usersRepo{q: s.q} }
func (s *Store) Doors() store.Doors   { return &doorsRepo{q: s.q} }
func (s *Store) Shares() store.Shares { return &sharesRepo{q: s.q} }

func now() time.Time { return time.Now().UTC() }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapAffected turns a zero-row write into ErrNotFound.
func mapAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// shareColumns hold random values; a collision there means "regenerate", not
// "already exists".
var shareColumns = []string{"shares.share", "doors.share", "doors.secret"}

// mapConstraint translates sqlite constraint violations into store errors.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	msg := se.Error()
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %s", store.ErrNotFound, msg)
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return uniqueViolation(msg)
	case sqlite3.SQLITE_CONSTRAINT:
		// Primary result code only; fall back to the message.
		switch {
		case strings.Contains(msg, "FOREIGN KEY"):
			return fmt.Errorf("%w: %s", store.ErrNotFound, msg)
		case strings.Contains(msg, "UNIQUE"):
			return uniqueViolation(msg)
		}
	}
	return err
}

func uniqueViolation(msg string) error {
	for _, col := range shareColumns {
		if strings.Contains(msg, col) {
			return fmt.Errorf("%w: %s", store.ErrDuplicateShare, col)
		}
	}
	return fmt.Errorf("%w: %s", store.ErrAlreadyExists, msg)
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapOptionalBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		Name:               row.UserName,
		Email:              row.Email,
		PasswordHash:       row.PasswordHash,
		IsActive:           row.IsActive,
		IsAdmin:            row.IsAdmin,
		ValidationCodeHash: mapNullString(row.ValidationCodeHash),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func mapDoor(row gen.Door) domain.Door {
	return domain.Door{
		Name:      row.DoorName,
		Share:     row.Share,
		Secret:    row.Secret,
		CreatedAt: row.CreatedAt,
	}
}

func mapShare(row gen.Share) domain.Share {
	return domain.Share{
		ID:            row.ID,
		UserName:      row.UserName,
		DoorName:      row.DoorName,
		Value:         row.Share,
		IsValidated:   row.IsValidated,
		IsBlacklisted: row.IsBlacklisted,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapShares(rows []gen.Share) []domain.Share {
	out := make([]domain.Share, len(rows))
	for i, row := range rows {
		out[i] = mapShare(row)
	}
	return out
}

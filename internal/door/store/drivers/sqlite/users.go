package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByName(ctx context.Context, name string) (domain.User, error) {
	row, err := r.q.GetUserByName(ctx, name)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByValidationCode(ctx context.Context, codeHash string) (domain.User, error) {
	row, err := r.q.GetUserByValidationCode(ctx, mapStringNull(codeHash))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = now()
	}
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		UserName:           u.Name,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		IsActive:           u.IsActive,
		IsAdmin:            u.IsAdmin,
		ValidationCodeHash: mapStringNull(u.ValidationCodeHash),
		CreatedAt:          createdAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *usersRepo) ActivateUser(ctx context.Context, name string) error {
	return mapAffected(r.q.ActivateUser(ctx, gen.ActivateUserParams{
		UserName:  name,
		UpdatedAt: now(),
	}))
}

func (r *usersRepo) DeleteUser(ctx context.Context, name string) error {
	return mapAffected(r.q.DeleteUser(ctx, name))
}

func (r *usersRepo) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, error) {
	page = page.Normalize()
	rows, err := r.q.ListUsers(ctx, gen.ListUsersParams{
		Offset: int64(page.Offset),
		Limit:  int64(page.Limit),
	})
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = mapUser(row)
	}
	return users, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *usersRepo) DeletePendingUsers(ctx context.Context, before time.Time) (int64, error) {
	return r.q.DeletePendingUsers(ctx, before.UTC())
}

package sqlite

import (
	"context"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/store/drivers/sqlite/gen"
)

type sharesRepo struct {
	q *gen.Queries
}

func (r *sharesRepo) GetShareByID(ctx context.Context, id string) (domain.Share, error) {
	row, err := r.q.GetShareByID(ctx, id)
	if err != nil {
		return domain.Share{}, mapNotFound(err)
	}
	return mapShare(row), nil
}

func (r *sharesRepo) GetShareByValue(ctx context.Context, value []byte) (domain.Share, error) {
	row, err := r.q.GetShareByValue(ctx, value)
	if err != nil {
		return domain.Share{}, mapNotFound(err)
	}
	return mapShare(row), nil
}

func (r *sharesRepo) GetActiveShare(ctx context.Context, userName, doorName string) (domain.Share, error) {
	row, err := r.q.GetActiveShare(ctx, gen.GetActiveShareParams{
		UserName: userName,
		DoorName: doorName,
	})
	if err != nil {
		return domain.Share{}, mapNotFound(err)
	}
	return mapShare(row), nil
}

func (r *sharesRepo) CreateShare(ctx context.Context, s domain.Share) error {
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = now()
	}
	return mapConstraint(r.q.CreateShare(ctx, gen.CreateShareParams{
		ID:          s.ID,
		UserName:    s.UserName,
		DoorName:    s.DoorName,
		Share:       s.Value,
		IsValidated: s.IsValidated,
		CreatedAt:   createdAt.UTC(),
	}))
}

func (r *sharesRepo) MarkValidated(ctx context.Context, id string) error {
	return mapAffected(r.q.MarkShareValidated(ctx, gen.MarkShareValidatedParams{
		ID:        id,
		UpdatedAt: now(),
	}))
}

func (r *sharesRepo) MarkBlacklisted(ctx context.Context, id string) error {
	return mapAffected(r.q.MarkShareBlacklisted(ctx, gen.MarkShareBlacklistedParams{
		ID:        id,
		UpdatedAt: now(),
	}))
}

func (r *sharesRepo) DeleteShare(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteShare(ctx, id))
}

func (r *sharesRepo) ListShares(ctx context.Context, filter domain.ShareFilter) ([]domain.Share, error) {
	page := filter.Page.Normalize()
	rows, err := r.q.ListShares(ctx, gen.ListSharesParams{
		UserName:      mapStringNull(filter.UserName),
		DoorName:      mapStringNull(filter.DoorName),
		IsValidated:   mapOptionalBool(filter.IsValidated),
		IsBlacklisted: mapOptionalBool(filter.IsBlacklisted),
		Offset:        int64(page.Offset),
		Limit:         int64(page.Limit),
	})
	if err != nil {
		return nil, err
	}
	return mapShares(rows), nil
}

func (r *sharesRepo) ListUserKeys(ctx context.Context, userName string) ([]domain.Share, error) {
	rows, err := r.q.ListUserKeys(ctx, userName)
	if err != nil {
		return nil, err
	}
	return mapShares(rows), nil
}

func (r *sharesRepo) ListBlacklistedShares(ctx context.Context, doorName string) ([]domain.Share, error) {
	rows, err := r.q.ListBlacklistedShares(ctx, doorName)
	if err != nil {
		return nil, err
	}
	return mapShares(rows), nil
}

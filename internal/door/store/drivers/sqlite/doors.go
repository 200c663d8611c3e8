package sqlite

import (
	"context"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/store/drivers/sqlite/gen"
)

type doorsRepo struct {
	q *gen.Queries
}

func (r *doorsRepo) GetDoorByName(ctx context.Context, name string) (domain.Door, error) {
	row, err := r.q.GetDoorByName(ctx, name)
	if err != nil {
		return domain.Door{}, mapNotFound(err)
	}
	return mapDoor(row), nil
}

func (r *doorsRepo) GetDoorBySecret(ctx context.Context, secret []byte) (domain.Door, error) {
	row, err := r.q.GetDoorBySecret(ctx, secret)
	if err != nil {
		return domain.Door{}, mapNotFound(err)
	}
	return mapDoor(row), nil
}

func (r *doorsRepo) CreateDoor(ctx context.Context, d domain.Door) error {
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = now()
	}
	return mapConstraint(r.q.CreateDoor(ctx, gen.CreateDoorParams{
		DoorName:  d.Name,
		Share:     d.Share,
		Secret:    d.Secret,
		CreatedAt: createdAt.UTC(),
	}))
}

func (r *doorsRepo) DeleteDoor(ctx context.Context, name string) error {
	return mapAffected(r.q.DeleteDoor(ctx, name))
}

func (r *doorsRepo) ListDoors(ctx context.Context, page domain.Page) ([]domain.Door, error) {
	page = page.Normalize()
	rows, err := r.q.ListDoors(ctx, gen.ListDoorsParams{
		Offset: int64(page.Offset),
		Limit:  int64(page.Limit),
	})
	if err != nil {
		return nil, err
	}

	doors := make([]domain.Door, len(rows))
	for i, row := range rows {
		doors[i] = mapDoor(row)
	}
	return doors, nil
}

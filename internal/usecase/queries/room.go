package queries

import (
	"context"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id string) (room.Room, error)
	List(ctx context.Context) []room.Room
	ListByStatus(ctx context.Context, status room.Status) []room.Room
}

type roomQueriesImpl struct {
	repo RoomReadStore
}

func NewRoomQueries(repo RoomReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) GetByID(_ context.Context, id string) (room.Room, error) {
	rm, err := q.repo.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return room.Room{}, errs.ErrRoomNotFound
		}
		return room.Room{}, err
	}
	return rm, nil
}

func (q *roomQueriesImpl) List(_ context.Context) []room.Room {
	return q.repo.All()
}

func (q *roomQueriesImpl) ListByStatus(_ context.Context, status room.Status) []room.Room {
	return q.repo.ByStatus(status)
}

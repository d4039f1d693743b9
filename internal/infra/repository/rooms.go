package repository

import (
	"log/slog"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/kvstore"
)

type Rooms struct {
	c *collection[room.Room]
}

func NewRooms(store kvstore.Store, logger *slog.Logger, seed []room.Room) *Rooms {
	return &Rooms{
		c: newCollection(store, logger, kvstore.KeyRooms,
			func(r *room.Room) string { return r.ID }, seed, false),
	}
}

func (r *Rooms) All() []room.Room {
	return r.c.all()
}

func (r *Rooms) Get(id string) (room.Room, error) {
	return r.c.get(id)
}

func (r *Rooms) GetByNumber(number string) (room.Room, error) {
	rooms := r.c.filter(func(rm *room.Room) bool { return rm.Number == number })
	if len(rooms) == 0 {
		return room.Room{}, infra.WrapRepoErr("no room with number "+number, nil, infra.KindNotFound)
	}
	return rooms[0], nil
}

func (r *Rooms) ByStatus(status room.Status) []room.Room {
	return r.c.filter(func(rm *room.Room) bool { return rm.Status == status })
}

func (r *Rooms) ByType(roomType string, status room.Status) []room.Room {
	return r.c.filter(func(rm *room.Room) bool {
		return rm.Type == roomType && rm.Status == status
	})
}

func (r *Rooms) Count() int {
	return r.c.count()
}

func (r *Rooms) SetStatus(id string, status room.Status) (room.Room, error) {
	updated, _, err := r.c.mutate(id, func(rm *room.Room) bool {
		rm.SetStatus(status)
		return true
	})
	return updated, err
}

func (r *Rooms) ResetToSeed() error {
	return r.c.resetToSeed()
}

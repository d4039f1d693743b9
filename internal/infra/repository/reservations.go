package repository

import (
	"log/slog"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/pkg/ident"
)

const reservationIDPrefix = "RES"

type Reservations struct {
	c *collection[reservation.Reservation]
}

func NewReservations(store kvstore.Store, logger *slog.Logger, seed []reservation.Reservation, startEmpty bool) *Reservations {
	return &Reservations{
		c: newCollection(store, logger, kvstore.KeyReservations,
			func(r *reservation.Reservation) string { return r.ID }, seed, startEmpty),
	}
}

func (r *Reservations) All() []reservation.Reservation {
	return r.c.all()
}

func (r *Reservations) Get(id string) (reservation.Reservation, error) {
	return r.c.get(id)
}

func (r *Reservations) ByGuest(guestID string) []reservation.Reservation {
	return r.c.filter(func(res *reservation.Reservation) bool { return res.GuestID == guestID })
}

func (r *Reservations) ByRoom(roomID string) []reservation.Reservation {
	return r.c.filter(func(res *reservation.Reservation) bool { return res.RoomID == roomID })
}

func (r *Reservations) ByStatus(status reservation.Status) []reservation.Reservation {
	return r.c.filter(func(res *reservation.Reservation) bool { return res.Status == status })
}

func (r *Reservations) Active() []reservation.Reservation {
	return r.c.filter(func(res *reservation.Reservation) bool { return res.IsActive() })
}

func (r *Reservations) NextID() string {
	return ident.Next(reservationIDPrefix, r.c.ids())
}

func (r *Reservations) Insert(res reservation.Reservation) (reservation.Reservation, error) {
	return r.c.insert(res)
}

// Update applies fn under the collection lock; fn returning false marks a
// declined state transition, which skips persistence (silent no-op policy).
func (r *Reservations) Update(id string, fn func(*reservation.Reservation) bool) (reservation.Reservation, bool, error) {
	return r.c.mutate(id, fn)
}

func (r *Reservations) ResetToSeed() error {
	return r.c.resetToSeed()
}

func (r *Reservations) Clear() error {
	return r.c.clear()
}

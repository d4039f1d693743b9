package commands

import (
	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/domain/guest"
	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
)

// Collection ports the command layer depends on. Each command service
// receives the collaborator stores it needs at construction time; nothing is
// resolved ambiently at call time.

type RoomStore interface {
	Get(id string) (room.Room, error)
	SetStatus(id string, status room.Status) (room.Room, error)
	ResetToSeed() error
}

type GuestStore interface {
	Get(id string) (guest.Guest, error)
	NextID() string
	Insert(g guest.Guest) (guest.Guest, error)
	Update(id string, fn func(*guest.Guest) bool) (guest.Guest, bool, error)
	ResetToSeed() error
	Clear() error
}

type ReservationStore interface {
	Get(id string) (reservation.Reservation, error)
	ByRoom(roomID string) []reservation.Reservation
	NextID() string
	Insert(res reservation.Reservation) (reservation.Reservation, error)
	Update(id string, fn func(*reservation.Reservation) bool) (reservation.Reservation, bool, error)
	ResetToSeed() error
	Clear() error
}

type ActivityStore interface {
	Get(id string) (activity.Activity, error)
	ByReservation(reservationID string) []activity.Activity
	NextID() string
	Insert(act activity.Activity) (activity.Activity, error)
	Update(id string, fn func(*activity.Activity) bool) (activity.Activity, bool, error)
	ResetToSeed() error
	Clear() error
}

type TaskStore interface {
	Get(id string) (housekeeping.Task, error)
	ByRoom(roomID string) []housekeeping.Task
	NextID() string
	Insert(task housekeeping.Task) (housekeeping.Task, error)
	Update(id string, fn func(*housekeeping.Task) bool) (housekeeping.Task, bool, error)
	UpdateWhere(pred func(*housekeeping.Task) bool, fn func(*housekeeping.Task)) error
	ResetToSeed() error
	Clear() error
}

type InvoiceStore interface {
	Get(id string) (billing.Invoice, error)
	GetByReservation(reservationID string) (billing.Invoice, error)
	NextID() string
	Insert(inv billing.Invoice) (billing.Invoice, error)
	Update(id string, fn func(*billing.Invoice) bool) (billing.Invoice, bool, error)
	ResetToSeed() error
	Clear() error
}

package queries

import (
	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/domain/guest"
	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
)

// Read-side collection ports. Queries never mutate; they compute derived
// views on demand from the current collection snapshot.

type RoomReadStore interface {
	All() []room.Room
	Get(id string) (room.Room, error)
	ByStatus(status room.Status) []room.Room
	ByType(roomType string, status room.Status) []room.Room
	Count() int
}

type GuestReadStore interface {
	All() []guest.Guest
	Get(id string) (guest.Guest, error)
	Search(query string) []guest.Guest
	Count() int
}

type ReservationReadStore interface {
	All() []reservation.Reservation
	Get(id string) (reservation.Reservation, error)
	ByGuest(guestID string) []reservation.Reservation
	ByRoom(roomID string) []reservation.Reservation
	ByStatus(status reservation.Status) []reservation.Reservation
	Active() []reservation.Reservation
}

type ActivityReadStore interface {
	All() []activity.Activity
	Get(id string) (activity.Activity, error)
	ByReservation(reservationID string) []activity.Activity
	ByGuest(guestID string) []activity.Activity
	ByStatus(status activity.Status) []activity.Activity
}

type TaskReadStore interface {
	All() []housekeeping.Task
	Get(id string) (housekeeping.Task, error)
	ByRoom(roomID string) []housekeeping.Task
	ByStatus(status housekeeping.Status) []housekeeping.Task
	ByPriority(priority housekeeping.Priority) []housekeeping.Task
}

type InvoiceReadStore interface {
	All() []billing.Invoice
	Get(id string) (billing.Invoice, error)
	GetByReservation(reservationID string) (billing.Invoice, error)
	ByGuest(guestID string) []billing.Invoice
	ByPaymentStatus(status billing.PaymentStatus) []billing.Invoice
}

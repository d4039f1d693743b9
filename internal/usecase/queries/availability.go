package queries

import (
	"context"

	"hotel-ops/internal/domain/reservation"
)

// AvailabilityQueries is the booking conflict checker. A room is free for a
// requested stay when no active (Confirmed or Checked In) reservation on it
// overlaps the half-open interval; Checked Out and Cancelled reservations
// never block.
type AvailabilityQueries interface {
	// IsRoomAvailable scans the room's reservations, ignoring the one named
	// by excludeReservationID (so an edit or room shift does not conflict
	// with itself; pass "" when not applicable).
	IsRoomAvailable(ctx context.Context, roomID string, stay reservation.StayPeriod, excludeReservationID string) bool

	// AvailableRoomIDs lists rooms of the given type (all types when empty)
	// that are administratively Available and free for the stay. A room in
	// Cleaning or Maintenance is excluded even with no conflicting booking.
	AvailableRoomIDs(ctx context.Context, stay reservation.StayPeriod, roomType string) []string
}

type availabilityQueriesImpl struct {
	reservations ReservationReadStore
	rooms        RoomReadStore
}

func NewAvailabilityQueries(reservations ReservationReadStore, rooms RoomReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{reservations: reservations, rooms: rooms}
}

func (q *availabilityQueriesImpl) IsRoomAvailable(_ context.Context, roomID string, stay reservation.StayPeriod, excludeReservationID string) bool {
	for _, res := range q.reservations.ByRoom(roomID) {
		if excludeReservationID != "" && res.ID == excludeReservationID {
			continue
		}
		if res.BlocksStay(stay) {
			return false
		}
	}
	return true
}

func (q *availabilityQueriesImpl) AvailableRoomIDs(ctx context.Context, stay reservation.StayPeriod, roomType string) []string {
	rooms := q.rooms.All()
	ids := make([]string, 0, len(rooms))
	for _, rm := range rooms {
		if roomType != "" && rm.Type != roomType {
			continue
		}
		if !rm.Status.IsBookable() {
			continue
		}
		if q.IsRoomAvailable(ctx, rm.ID, stay, "") {
			ids = append(ids, rm.ID)
		}
	}
	return ids
}

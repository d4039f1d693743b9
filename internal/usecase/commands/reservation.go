package commands

import (
	"context"
	"time"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/queries"
)

type CreateReservationParams struct {
	GuestID         string
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	Source          reservation.Source
	SpecialRequests *string
}

// ReservationCommands drives the booking lifecycle. Transitions follow the
// silent-guard policy: invoking one from the wrong source state returns the
// unchanged reservation, not an error. Lookup failures are real errors.
type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (reservation.Reservation, error)
	CheckIn(ctx context.Context, id string) (reservation.Reservation, error)
	CheckOut(ctx context.Context, id string) (reservation.Reservation, error)
	Cancel(ctx context.Context, id string) (reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status reservation.Status) (reservation.Reservation, error)
	ShiftRoom(ctx context.Context, id, newRoomID string) (reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	reservations ReservationStore
	rooms        RoomStore
	guests       GuestStore
	availability queries.AvailabilityQueries
	clock        clock.Clock
}

func NewReservationCommands(
	reservations ReservationStore,
	rooms RoomStore,
	guests GuestStore,
	availability queries.AvailabilityQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		rooms:        rooms,
		guests:       guests,
		availability: availability,
		clock:        clk,
	}
}

// Create books a room for a guest. The new reservation enters Confirmed and
// does not touch room status; that reflects physical occupancy and changes
// only on check-in. The overlap invariant is enforced here: a conflicting
// active reservation rejects the booking.
func (s *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (reservation.Reservation, error) {
	if !params.CheckIn.Before(params.CheckOut) {
		return reservation.Reservation{}, errs.ErrInvalidStay
	}

	if _, err := s.guests.Get(params.GuestID); err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrGuestNotFound)
	}
	rm, err := s.rooms.Get(params.RoomID)
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrRoomNotFound)
	}

	stay := reservation.NewStayPeriod(params.CheckIn, params.CheckOut)
	if !s.availability.IsRoomAvailable(ctx, params.RoomID, stay, "") {
		return reservation.Reservation{}, errs.ErrRoomUnavailable
	}

	source := params.Source
	if !source.IsValid() {
		source = reservation.SourceFrontdesk
	}

	res := reservation.Reservation{
		ID:              s.reservations.NextID(),
		GuestID:         params.GuestID,
		RoomID:          rm.ID,
		RoomNumber:      rm.Number,
		CheckIn:         params.CheckIn,
		CheckOut:        params.CheckOut,
		Status:          reservation.StatusConfirmed,
		Adults:          params.Adults,
		Children:        params.Children,
		Source:          source,
		SpecialRequests: params.SpecialRequests,
		CreatedAt:       s.clock.Now(),
	}

	created, err := s.reservations.Insert(res)
	if err != nil {
		return created, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	return created, nil
}

// CheckIn moves Confirmed → Checked In and occupies the room.
func (s *reservationCommandsImpl) CheckIn(_ context.Context, id string) (reservation.Reservation, error) {
	now := s.clock.Now()
	res, changed, err := s.reservations.Update(id, func(r *reservation.Reservation) bool {
		return r.MarkCheckedIn(now)
	})
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrReservationNotFound)
	}
	if changed {
		if _, err := s.rooms.SetStatus(res.RoomID, room.StatusOccupied); err != nil {
			return res, markNotFound(err, errs.ErrRoomNotFound)
		}
	}
	return res, nil
}

// CheckOut moves Checked In → Checked Out and sends the room to Cleaning;
// housekeeping must explicitly release it back to Available.
func (s *reservationCommandsImpl) CheckOut(_ context.Context, id string) (reservation.Reservation, error) {
	now := s.clock.Now()
	res, changed, err := s.reservations.Update(id, func(r *reservation.Reservation) bool {
		return r.MarkCheckedOut(now)
	})
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrReservationNotFound)
	}
	if changed {
		if _, err := s.rooms.SetStatus(res.RoomID, room.StatusCleaning); err != nil {
			return res, markNotFound(err, errs.ErrRoomNotFound)
		}
	}
	return res, nil
}

// Cancel is reachable from Confirmed only; a stay in progress must check out.
func (s *reservationCommandsImpl) Cancel(_ context.Context, id string) (reservation.Reservation, error) {
	res, _, err := s.reservations.Update(id, func(r *reservation.Reservation) bool {
		return r.MarkCancelled()
	})
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrReservationNotFound)
	}
	return res, nil
}

// UpdateStatus is the administrative override kept from the reference
// system: it sets the status directly with no guard and no room side effect.
func (s *reservationCommandsImpl) UpdateStatus(_ context.Context, id string, status reservation.Status) (reservation.Reservation, error) {
	if !status.IsValid() {
		return reservation.Reservation{}, errs.ErrInvalidStatus
	}
	res, _, err := s.reservations.Update(id, func(r *reservation.Reservation) bool {
		r.Status = status
		return true
	})
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrReservationNotFound)
	}
	return res, nil
}

// ShiftRoom reassigns an active reservation to another room. When the guest
// is checked in, the old room goes to Cleaning and the new one becomes
// Occupied; before check-in only the reference moves. The availability
// re-check excludes the reservation itself so it cannot conflict with its
// own dates.
func (s *reservationCommandsImpl) ShiftRoom(ctx context.Context, id, newRoomID string) (reservation.Reservation, error) {
	current, err := s.reservations.Get(id)
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrReservationNotFound)
	}
	newRoom, err := s.rooms.Get(newRoomID)
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrRoomNotFound)
	}

	if !s.availability.IsRoomAvailable(ctx, newRoomID, current.Stay(), id) {
		return reservation.Reservation{}, errs.ErrRoomUnavailable
	}

	oldRoomID := current.RoomID
	wasCheckedIn := current.Status == reservation.StatusCheckedIn

	res, _, err := s.reservations.Update(id, func(r *reservation.Reservation) bool {
		r.MoveToRoom(newRoom.ID, newRoom.Number)
		return true
	})
	if err != nil {
		return reservation.Reservation{}, markNotFound(err, errs.ErrReservationNotFound)
	}

	if wasCheckedIn && oldRoomID != newRoom.ID {
		if _, err := s.rooms.SetStatus(oldRoomID, room.StatusCleaning); err != nil {
			return res, markNotFound(err, errs.ErrRoomNotFound)
		}
		if _, err := s.rooms.SetStatus(newRoom.ID, room.StatusOccupied); err != nil {
			return res, markNotFound(err, errs.ErrRoomNotFound)
		}
	}
	return res, nil
}

// markNotFound narrows an infra NOT_FOUND to the matching sentinel while
// passing other repository errors through unchanged.
func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

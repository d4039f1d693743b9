//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-ops/internal/domain/guest"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"
	"hotel-ops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationFixture struct {
	commands     commands.ReservationCommands
	reservations *repository.Reservations
	rooms        *repository.Rooms
	clock        *clock.MockClock
}

func newReservationFixture(t *testing.T, seedReservations []reservation.Reservation) *reservationFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rooms := repository.NewRooms(store, logger, []room.Room{
		builder.NewRoomBuilder().Build(),
		builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.ID = "RM002"
			b.Number = "102"
		}).Build(),
	})
	guests := repository.NewGuests(store, logger, []guest.Guest{
		builder.NewGuestBuilder().Build(),
	}, false)
	reservations := repository.NewReservations(store, logger, seedReservations, false)
	availability := queries.NewAvailabilityQueries(reservations, rooms)
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	return &reservationFixture{
		commands:     commands.NewReservationCommands(reservations, rooms, guests, availability, clk),
		reservations: reservations,
		rooms:        rooms,
		clock:        clk,
	}
}

func createParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		GuestID:  "G001",
		RoomID:   "RM001",
		CheckIn:  time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC),
		Adults:   2,
		Source:   reservation.SourceFrontdesk,
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newReservationFixture(t, nil)

		res, err := f.commands.Create(ctx, createParams())
		require.NoError(t, err)

		assert.Equal(t, "RES001", res.ID)
		assert.Equal(t, reservation.StatusConfirmed, res.Status)
		assert.Equal(t, "101", res.RoomNumber)
		assert.Equal(t, f.clock.Now(), res.CreatedAt)

		// creation must not touch room status
		rm, err := f.rooms.Get("RM001")
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, rm.Status)
	})

	t.Run("unknown guest", func(t *testing.T) {
		f := newReservationFixture(t, nil)
		params := createParams()
		params.GuestID = "G999"

		_, err := f.commands.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrGuestNotFound)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newReservationFixture(t, nil)
		params := createParams()
		params.RoomID = "RM999"

		_, err := f.commands.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("inverted dates", func(t *testing.T) {
		f := newReservationFixture(t, nil)
		params := createParams()
		params.CheckIn, params.CheckOut = params.CheckOut, params.CheckIn

		_, err := f.commands.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrInvalidStay)
	})

	t.Run("overlapping active booking rejected", func(t *testing.T) {
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 1, 9, 15, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 1, 11, 11, 0, 0, 0, time.UTC)
		}).Build()
		f := newReservationFixture(t, []reservation.Reservation{existing})

		_, err := f.commands.Create(ctx, createParams())
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})

	t.Run("back-to-back bookings allowed", func(t *testing.T) {
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
		}).Build()
		f := newReservationFixture(t, []reservation.Reservation{existing})

		_, err := f.commands.Create(ctx, createParams())
		assert.NoError(t, err)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
			b.Status = reservation.StatusCancelled
		}).Build()
		f := newReservationFixture(t, []reservation.Reservation{existing})

		_, err := f.commands.Create(ctx, createParams())
		assert.NoError(t, err)
	})

	t.Run("unknown source defaults to frontdesk", func(t *testing.T) {
		f := newReservationFixture(t, nil)
		params := createParams()
		params.Source = "Walk-in"

		res, err := f.commands.Create(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, reservation.SourceFrontdesk, res.Source)
	})
}

func TestCheckInCheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("check in occupies room", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		res, err := f.commands.CheckIn(ctx, "RES001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedIn, res.Status)

		rm, err := f.rooms.Get("RM001")
		require.NoError(t, err)
		assert.Equal(t, room.StatusOccupied, rm.Status)
	})

	t.Run("repeat check in leaves room untouched", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})
		_, err := f.commands.CheckIn(ctx, "RES001")
		require.NoError(t, err)
		_, err = f.rooms.SetStatus("RM001", room.StatusCleaning)
		require.NoError(t, err)

		res, err := f.commands.CheckIn(ctx, "RES001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedIn, res.Status)

		rm, err := f.rooms.Get("RM001")
		require.NoError(t, err)
		assert.Equal(t, room.StatusCleaning, rm.Status)
	})

	t.Run("check out sends room to cleaning", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})
		_, err := f.commands.CheckIn(ctx, "RES001")
		require.NoError(t, err)
		f.clock.Add(48 * time.Hour)

		res, err := f.commands.CheckOut(ctx, "RES001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedOut, res.Status)
		require.NotNil(t, res.CheckedOutAt)
		assert.Equal(t, f.clock.Now(), *res.CheckedOutAt)

		rm, err := f.rooms.Get("RM001")
		require.NoError(t, err)
		assert.Equal(t, room.StatusCleaning, rm.Status)
	})

	t.Run("check out before check in is a no-op", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		res, err := f.commands.CheckOut(ctx, "RES001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status)

		rm, err := f.rooms.Get("RM001")
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, rm.Status)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t, nil)

		_, err := f.commands.CheckIn(ctx, "RES404")
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed cancels", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		res, err := f.commands.Cancel(ctx, "RES001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, res.Status)
	})

	t.Run("checked in stays checked in", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})
		_, err := f.commands.CheckIn(ctx, "RES001")
		require.NoError(t, err)

		res, err := f.commands.Cancel(ctx, "RES001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedIn, res.Status)
	})
}

func TestShiftRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("before check in only the reference moves", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		res, err := f.commands.ShiftRoom(ctx, "RES001", "RM002")
		require.NoError(t, err)
		assert.Equal(t, "RM002", res.RoomID)
		assert.Equal(t, "102", res.RoomNumber)

		rm, err := f.rooms.Get("RM002")
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, rm.Status)
	})

	t.Run("while checked in rooms swap states", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})
		_, err := f.commands.CheckIn(ctx, "RES001")
		require.NoError(t, err)

		res, err := f.commands.ShiftRoom(ctx, "RES001", "RM002")
		require.NoError(t, err)
		assert.Equal(t, "RM002", res.RoomID)

		oldRoom, err := f.rooms.Get("RM001")
		require.NoError(t, err)
		assert.Equal(t, room.StatusCleaning, oldRoom.Status)

		newRoom, err := f.rooms.Get("RM002")
		require.NoError(t, err)
		assert.Equal(t, room.StatusOccupied, newRoom.Status)
	})

	t.Run("target room with conflicting booking rejected", func(t *testing.T) {
		other := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ID = "RES002"
			b.GuestID = "G002"
			b.RoomID = "RM002"
			b.RoomNumber = "102"
		}).Build()
		f := newReservationFixture(t, []reservation.Reservation{
			builder.NewReservationBuilder().Build(),
			other,
		})

		_, err := f.commands.ShiftRoom(ctx, "RES001", "RM002")
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})

	t.Run("shifting to the same room does not conflict with itself", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		res, err := f.commands.ShiftRoom(ctx, "RES001", "RM001")
		require.NoError(t, err)
		assert.Equal(t, "RM001", res.RoomID)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("direct override", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		res, err := f.commands.UpdateStatus(ctx, "RES001", reservation.StatusCheckedOut)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedOut, res.Status)

		// no lifecycle side effects on the room
		rm, err := f.rooms.Get("RM001")
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, rm.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		f := newReservationFixture(t, []reservation.Reservation{builder.NewReservationBuilder().Build()})

		_, err := f.commands.UpdateStatus(ctx, "RES001", "Archived")
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})
}

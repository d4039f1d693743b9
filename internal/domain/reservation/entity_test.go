//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationLifecycle(t *testing.T) {
	now := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)

	t.Run("check in from confirmed", func(t *testing.T) {
		res := builder.NewReservationBuilder().Build()

		changed := res.MarkCheckedIn(now)

		assert.True(t, changed)
		assert.Equal(t, reservation.StatusCheckedIn, res.Status)
		require.NotNil(t, res.CheckedInAt)
		assert.Equal(t, now, *res.CheckedInAt)
	})

	t.Run("check in from checked in is a no-op", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCheckedIn
		}).Build()

		changed := res.MarkCheckedIn(now)

		assert.False(t, changed)
		assert.Equal(t, reservation.StatusCheckedIn, res.Status)
		assert.Nil(t, res.CheckedInAt)
	})

	t.Run("check out requires checked in", func(t *testing.T) {
		res := builder.NewReservationBuilder().Build()

		changed := res.MarkCheckedOut(now)

		assert.False(t, changed)
		assert.Equal(t, reservation.StatusConfirmed, res.Status)
		assert.Nil(t, res.CheckedOutAt)
	})

	t.Run("full stay cycle", func(t *testing.T) {
		res := builder.NewReservationBuilder().Build()
		later := now.Add(48 * time.Hour)

		require.True(t, res.MarkCheckedIn(now))
		require.True(t, res.MarkCheckedOut(later))

		assert.Equal(t, reservation.StatusCheckedOut, res.Status)
		require.NotNil(t, res.CheckedOutAt)
		assert.Equal(t, later, *res.CheckedOutAt)
	})

	t.Run("cancel from confirmed", func(t *testing.T) {
		res := builder.NewReservationBuilder().Build()

		assert.True(t, res.MarkCancelled())
		assert.Equal(t, reservation.StatusCancelled, res.Status)
	})

	t.Run("cancel after check in is a no-op", func(t *testing.T) {
		res := builder.NewReservationBuilder().Build()
		require.True(t, res.MarkCheckedIn(now))

		assert.False(t, res.MarkCancelled())
		assert.Equal(t, reservation.StatusCheckedIn, res.Status)
	})

	t.Run("terminal states accept no transitions", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusCheckedOut, reservation.StatusCancelled} {
			res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = status
			}).Build()

			assert.False(t, res.MarkCheckedIn(now))
			assert.False(t, res.MarkCheckedOut(now))
			assert.False(t, res.MarkCancelled())
			assert.Equal(t, status, res.Status)
		}
	})
}

func TestReservationBlocksStay(t *testing.T) {
	requested := reservation.NewStayPeriod(
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)

	t.Run("active overlapping reservation blocks", func(t *testing.T) {
		res := builder.NewReservationBuilder().Build()
		assert.True(t, res.BlocksStay(requested))
	})

	t.Run("cancelled reservation never blocks", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCancelled
		}).Build()
		assert.False(t, res.BlocksStay(requested))
	})

	t.Run("checked out reservation never blocks", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCheckedOut
		}).Build()
		assert.False(t, res.BlocksStay(requested))
	})
}

func TestReservationMoveToRoom(t *testing.T) {
	res := builder.NewReservationBuilder().Build()

	res.MoveToRoom("RM002", "102")

	assert.Equal(t, "RM002", res.RoomID)
	assert.Equal(t, "102", res.RoomNumber)
}

//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityCommands(t *testing.T) (commands.ActivityCommands, *clock.MockClock) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	reservations := repository.NewReservations(store, logger, []reservation.Reservation{
		builder.NewReservationBuilder().Build(),
	}, false)
	activities := repository.NewActivities(store, logger, nil)
	clk := clock.NewMockClock(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))

	return commands.NewActivityCommands(activities, reservations, clk), clk
}

func TestCreateActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("denormalizes guest and room from the reservation", func(t *testing.T) {
		cmds, clk := newActivityCommands(t)

		act, err := cmds.Create(ctx, commands.CreateActivityParams{
			ReservationID: "RES001",
			ActivityType:  activity.TypeSpaService,
			Description:   "Couples massage",
			Quantity:      2,
			UnitPrice:     60,
		})
		require.NoError(t, err)

		assert.Equal(t, "ACT001", act.ID)
		assert.Equal(t, "G001", act.GuestID)
		assert.Equal(t, "RM001", act.RoomID)
		assert.InDelta(t, 120.0, act.TotalPrice, 1e-9)
		assert.Equal(t, activity.StatusPending, act.Status)
		assert.Equal(t, clk.Now(), act.CreatedAt)
	})

	t.Run("unknown activity type rejected", func(t *testing.T) {
		cmds, _ := newActivityCommands(t)

		_, err := cmds.Create(ctx, commands.CreateActivityParams{
			ReservationID: "RES001",
			ActivityType:  "Skydiving",
			Quantity:      1,
			UnitPrice:     10,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		cmds, _ := newActivityCommands(t)

		_, err := cmds.Create(ctx, commands.CreateActivityParams{
			ReservationID: "RES404",
			ActivityType:  activity.TypeSpaService,
			Quantity:      1,
			UnitPrice:     10,
		})
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestCompleteActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("pending becomes billable", func(t *testing.T) {
		cmds, clk := newActivityCommands(t)
		created, err := cmds.Create(ctx, commands.CreateActivityParams{
			ReservationID: "RES001",
			ActivityType:  activity.TypeRoomService,
			Quantity:      1,
			UnitPrice:     25,
		})
		require.NoError(t, err)
		clk.Add(30 * time.Minute)

		act, err := cmds.Complete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, activity.StatusCompleted, act.Status)
		require.NotNil(t, act.CompletedAt)
		assert.Equal(t, clk.Now(), *act.CompletedAt)
	})

	t.Run("cancelled stays cancelled", func(t *testing.T) {
		cmds, _ := newActivityCommands(t)
		created, err := cmds.Create(ctx, commands.CreateActivityParams{
			ReservationID: "RES001",
			ActivityType:  activity.TypeRoomService,
			Quantity:      1,
			UnitPrice:     25,
		})
		require.NoError(t, err)
		_, err = cmds.UpdateStatus(ctx, created.ID, activity.StatusCancelled)
		require.NoError(t, err)

		act, err := cmds.Complete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, activity.StatusCancelled, act.Status)
	})

	t.Run("unknown activity", func(t *testing.T) {
		cmds, _ := newActivityCommands(t)

		_, err := cmds.Complete(ctx, "ACT404")
		assert.ErrorIs(t, err, errs.ErrActivityNotFound)
	})
}

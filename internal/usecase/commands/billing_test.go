//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type billingFixture struct {
	commands commands.BillingCommands
	invoices *repository.Invoices
	clock    *clock.MockClock
}

func newBillingFixture(t *testing.T, activities []activity.Activity) *billingFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rooms := repository.NewRooms(store, logger, []room.Room{
		builder.NewRoomBuilder().Build(),
	})
	reservations := repository.NewReservations(store, logger, []reservation.Reservation{
		builder.NewReservationBuilder().Build(),
	}, false)
	activityRepo := repository.NewActivities(store, logger, activities)
	invoices := repository.NewInvoices(store, logger, nil)
	clk := clock.NewMockClock(time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))

	return &billingFixture{
		commands: commands.NewBillingCommands(invoices, reservations, rooms, activityRepo, clk),
		invoices: invoices,
		clock:    clk,
	}
}

func TestGenerateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes room and activity charges", func(t *testing.T) {
		f := newBillingFixture(t, []activity.Activity{
			builder.NewActivityBuilder().Build(),
			builder.NewActivityBuilder().With(func(b *builder.ActivityBuilder) {
				b.ID = "ACT002"
				b.UnitPrice = 50
				b.Status = activity.StatusPending
			}).Build(),
		})

		inv, err := f.commands.GenerateInvoice(ctx, "RES001")
		require.NoError(t, err)

		// 2 nights at 100 plus the one completed activity at 25
		assert.Equal(t, "INV001", inv.ID)
		assert.Equal(t, "RES001", inv.ReservationID)
		assert.InDelta(t, 200.0, inv.RoomCharges, 1e-9)
		assert.InDelta(t, 25.0, inv.ActivityCharges, 1e-9)
		assert.InDelta(t, 27.0, inv.Tax, 1e-9)
		assert.InDelta(t, 252.0, inv.Total, 1e-9)
		assert.Equal(t, billing.PaymentPending, inv.PaymentStatus)
		assert.Equal(t, f.clock.Now(), inv.InvoiceDate)
		assert.Len(t, inv.Items, 2)
	})

	t.Run("repeat call returns the existing invoice", func(t *testing.T) {
		f := newBillingFixture(t, nil)

		first, err := f.commands.GenerateInvoice(ctx, "RES001")
		require.NoError(t, err)
		f.clock.Add(24 * time.Hour)

		second, err := f.commands.GenerateInvoice(ctx, "RES001")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.InvoiceDate, second.InvoiceDate)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newBillingFixture(t, nil)

		_, err := f.commands.GenerateInvoice(ctx, "RES404")
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("settles a pending invoice", func(t *testing.T) {
		f := newBillingFixture(t, nil)
		inv, err := f.commands.GenerateInvoice(ctx, "RES001")
		require.NoError(t, err)

		paid, err := f.commands.ProcessPayment(ctx, inv.ID, billing.MethodCreditCard)
		require.NoError(t, err)
		assert.Equal(t, billing.PaymentPaid, paid.PaymentStatus)
		require.NotNil(t, paid.PaymentMethod)
		assert.Equal(t, billing.MethodCreditCard, *paid.PaymentMethod)
		require.NotNil(t, paid.PaymentDate)
		assert.Equal(t, f.clock.Now(), *paid.PaymentDate)
	})

	t.Run("paying twice keeps the first settlement", func(t *testing.T) {
		f := newBillingFixture(t, nil)
		inv, err := f.commands.GenerateInvoice(ctx, "RES001")
		require.NoError(t, err)
		_, err = f.commands.ProcessPayment(ctx, inv.ID, billing.MethodCash)
		require.NoError(t, err)
		firstPaidAt := f.clock.Now()
		f.clock.Add(time.Hour)

		paid, err := f.commands.ProcessPayment(ctx, inv.ID, billing.MethodCreditCard)
		require.NoError(t, err)
		assert.Equal(t, billing.MethodCash, *paid.PaymentMethod)
		assert.Equal(t, firstPaidAt, *paid.PaymentDate)
	})

	t.Run("unknown payment method rejected", func(t *testing.T) {
		f := newBillingFixture(t, nil)
		inv, err := f.commands.GenerateInvoice(ctx, "RES001")
		require.NoError(t, err)

		_, err = f.commands.ProcessPayment(ctx, inv.ID, "Barter")
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		f := newBillingFixture(t, nil)

		_, err := f.commands.ProcessPayment(ctx, "INV404", billing.MethodCash)
		assert.ErrorIs(t, err, errs.ErrInvoiceNotFound)
	})
}

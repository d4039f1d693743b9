//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, billing.Round2(1.234))
	assert.Equal(t, 1.24, billing.Round2(1.235))
	assert.Equal(t, 1.24, billing.Round2(1.236))
	assert.Equal(t, 100.0, billing.Round2(100))
	assert.Equal(t, 0.0, billing.Round2(0.001))
}

func TestCalculateRoomCharges(t *testing.T) {
	t.Run("rate times nights", func(t *testing.T) {
		stay := reservation.NewStayPeriod(
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		)
		assert.Equal(t, 300.0, billing.CalculateRoomCharges(100, stay))
	})

	t.Run("open stay bills zero", func(t *testing.T) {
		stay := reservation.NewStayPeriod(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
		assert.Equal(t, 0.0, billing.CalculateRoomCharges(100, stay))
	})
}

func TestCalculateActivityCharges(t *testing.T) {
	completed := builder.NewActivityBuilder().Build()
	pending := builder.NewActivityBuilder().With(func(b *builder.ActivityBuilder) {
		b.ID = "ACT002"
		b.UnitPrice = 50
		b.Status = activity.StatusPending
	}).Build()
	cancelled := builder.NewActivityBuilder().With(func(b *builder.ActivityBuilder) {
		b.ID = "ACT003"
		b.UnitPrice = 75
		b.Status = activity.StatusCancelled
	}).Build()

	total := billing.CalculateActivityCharges([]activity.Activity{completed, pending, cancelled})

	// only the completed activity bills
	assert.Equal(t, 25.0, total)
}

func TestCalculateTotals(t *testing.T) {
	t.Run("room plus activities with tax", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
		}).Build()
		acts := []activity.Activity{
			builder.NewActivityBuilder().With(func(b *builder.ActivityBuilder) {
				b.UnitPrice = 50
			}).Build(),
		}

		totals := billing.CalculateTotals(&res, 100, acts)

		assert.Equal(t, 200.0, totals.RoomCharges)
		assert.Equal(t, 50.0, totals.ActivityCharges)
		assert.Equal(t, 30.0, totals.Tax)
		assert.Equal(t, 280.0, totals.Total)
	})

	t.Run("tax is rounded before the total", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		}).Build()

		totals := billing.CalculateTotals(&res, 99.99, nil)

		// subtotal 99.99, raw tax 11.9988 rounds to 12.00
		assert.Equal(t, 99.99, totals.RoomCharges)
		assert.Equal(t, 12.0, totals.Tax)
		assert.Equal(t, 111.99, totals.Total)
	})

	t.Run("no activities", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
		}).Build()

		totals := billing.CalculateTotals(&res, 150, nil)

		assert.Equal(t, 450.0, totals.RoomCharges)
		assert.Equal(t, 0.0, totals.ActivityCharges)
		assert.Equal(t, 54.0, totals.Tax)
		assert.Equal(t, 504.0, totals.Total)
	})
}

func TestBuildLineItems(t *testing.T) {
	res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomNumber = "201"
		b.CheckIn = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		b.CheckOut = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	}).Build()
	acts := []activity.Activity{
		builder.NewActivityBuilder().With(func(b *builder.ActivityBuilder) {
			b.Description = "Spa package"
			b.Quantity = 2
			b.UnitPrice = 40
		}).Build(),
		builder.NewActivityBuilder().With(func(b *builder.ActivityBuilder) {
			b.ID = "ACT002"
			b.Status = activity.StatusPending
		}).Build(),
	}
	totals := billing.CalculateTotals(&res, 120, acts)

	items := billing.BuildLineItems(&res, "Deluxe", 120, totals, acts)

	require.Len(t, items, 2)
	assert.Equal(t, "Room 201 - Deluxe (2 nights)", items[0].Description)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 120.0, items[0].UnitPrice)
	assert.Equal(t, 240.0, items[0].Total)

	assert.Equal(t, "Spa package", items[1].Description)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, 80.0, items[1].Total)
}

func TestBuildLineItemsSingleNight(t *testing.T) {
	res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomNumber = "101"
		b.CheckIn = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		b.CheckOut = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	}).Build()
	totals := billing.CalculateTotals(&res, 100, nil)

	items := billing.BuildLineItems(&res, "Standard", 100, totals, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "Room 101 - Standard (1 night)", items[0].Description)
}

func TestCalculateOccupancyRate(t *testing.T) {
	assert.Equal(t, 50, billing.CalculateOccupancyRate(6, 3))
	assert.Equal(t, 33, billing.CalculateOccupancyRate(6, 2))
	assert.Equal(t, 17, billing.CalculateOccupancyRate(6, 1))
	assert.Equal(t, 0, billing.CalculateOccupancyRate(0, 0))
	assert.Equal(t, 100, billing.CalculateOccupancyRate(4, 4))
}

//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingInvoice() billing.Invoice {
	return billing.Invoice{
		ID:            "INV001",
		ReservationID: "RES001",
		Total:         369.6,
		PaymentStatus: billing.PaymentPending,
		InvoiceDate:   time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceMarkPaid(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	t.Run("pending invoice settles", func(t *testing.T) {
		inv := pendingInvoice()

		changed := inv.MarkPaid(billing.MethodCreditCard, now)

		assert.True(t, changed)
		assert.Equal(t, billing.PaymentPaid, inv.PaymentStatus)
		require.NotNil(t, inv.PaymentMethod)
		assert.Equal(t, billing.MethodCreditCard, *inv.PaymentMethod)
		require.NotNil(t, inv.PaymentDate)
		assert.Equal(t, now, *inv.PaymentDate)
	})

	t.Run("paying twice is a no-op", func(t *testing.T) {
		inv := pendingInvoice()
		require.True(t, inv.MarkPaid(billing.MethodCash, now))

		changed := inv.MarkPaid(billing.MethodCreditCard, now.Add(time.Hour))

		assert.False(t, changed)
		assert.Equal(t, billing.MethodCash, *inv.PaymentMethod)
		assert.Equal(t, now, *inv.PaymentDate)
	})
}

func TestInvoicePaidOn(t *testing.T) {
	now := time.Date(2024, 1, 3, 23, 30, 0, 0, time.UTC)
	inv := pendingInvoice()
	require.True(t, inv.MarkPaid(billing.MethodCash, now))

	assert.True(t, inv.PaidOn(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))
	assert.False(t, inv.PaidOn(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)))

	unpaid := pendingInvoice()
	assert.False(t, unpaid.PaidOn(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))
}

func TestInvoicePaidWithin(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	inv := pendingInvoice()
	require.True(t, inv.MarkPaid(billing.MethodCash, now))

	assert.True(t, inv.PaidWithin(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	))
	// boundary instants are inclusive
	assert.True(t, inv.PaidWithin(now, now))
	assert.False(t, inv.PaidWithin(
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	))
}

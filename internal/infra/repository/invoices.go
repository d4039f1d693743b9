package repository

import (
	"log/slog"

	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/pkg/ident"
)

const invoiceIDPrefix = "INV"

type Invoices struct {
	c *collection[billing.Invoice]
}

func NewInvoices(store kvstore.Store, logger *slog.Logger, seed []billing.Invoice) *Invoices {
	return &Invoices{
		c: newCollection(store, logger, kvstore.KeyBilling,
			func(i *billing.Invoice) string { return i.ID }, seed, false),
	}
}

func (i *Invoices) All() []billing.Invoice {
	return i.c.all()
}

func (i *Invoices) Get(id string) (billing.Invoice, error) {
	return i.c.get(id)
}

// GetByReservation returns the invoice snapshot of a reservation. At most one
// invoice exists per reservation.
func (i *Invoices) GetByReservation(reservationID string) (billing.Invoice, error) {
	found := i.c.filter(func(inv *billing.Invoice) bool { return inv.ReservationID == reservationID })
	if len(found) == 0 {
		return billing.Invoice{}, infra.WrapRepoErr("no invoice for reservation "+reservationID, nil, infra.KindNotFound)
	}
	return found[0], nil
}

func (i *Invoices) ByGuest(guestID string) []billing.Invoice {
	return i.c.filter(func(inv *billing.Invoice) bool { return inv.GuestID == guestID })
}

func (i *Invoices) ByPaymentStatus(status billing.PaymentStatus) []billing.Invoice {
	return i.c.filter(func(inv *billing.Invoice) bool { return inv.PaymentStatus == status })
}

func (i *Invoices) NextID() string {
	return ident.Next(invoiceIDPrefix, i.c.ids())
}

func (i *Invoices) Insert(inv billing.Invoice) (billing.Invoice, error) {
	return i.c.insert(inv)
}

func (i *Invoices) Update(id string, fn func(*billing.Invoice) bool) (billing.Invoice, bool, error) {
	return i.c.mutate(id, fn)
}

func (i *Invoices) ResetToSeed() error {
	return i.c.resetToSeed()
}

func (i *Invoices) Clear() error {
	return i.c.clear()
}

package queries

import (
	"context"
	"time"

	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
)

type BillingQueries interface {
	GetByID(ctx context.Context, id string) (billing.Invoice, error)
	GetByReservation(ctx context.Context, reservationID string) (billing.Invoice, error)
	List(ctx context.Context) []billing.Invoice
	ListByGuest(ctx context.Context, guestID string) []billing.Invoice
	ListByPaymentStatus(ctx context.Context, status billing.PaymentStatus) []billing.Invoice

	// TotalRevenue sums the totals of Paid invoices.
	TotalRevenue(ctx context.Context) float64
	// DailyRevenue sums Paid invoice totals whose payment fell on the given
	// calendar day.
	DailyRevenue(ctx context.Context, day time.Time) float64
	// RevenueBetween sums Paid invoice totals paid inside [from, to].
	RevenueBetween(ctx context.Context, from, to time.Time) float64
}

type billingQueriesImpl struct {
	repo InvoiceReadStore
}

func NewBillingQueries(repo InvoiceReadStore) BillingQueries {
	return &billingQueriesImpl{repo: repo}
}

func (q *billingQueriesImpl) GetByID(_ context.Context, id string) (billing.Invoice, error) {
	inv, err := q.repo.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return billing.Invoice{}, errs.ErrInvoiceNotFound
		}
		return billing.Invoice{}, err
	}
	return inv, nil
}

func (q *billingQueriesImpl) GetByReservation(_ context.Context, reservationID string) (billing.Invoice, error) {
	inv, err := q.repo.GetByReservation(reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return billing.Invoice{}, errs.ErrInvoiceNotFound
		}
		return billing.Invoice{}, err
	}
	return inv, nil
}

func (q *billingQueriesImpl) List(_ context.Context) []billing.Invoice {
	return q.repo.All()
}

func (q *billingQueriesImpl) ListByGuest(_ context.Context, guestID string) []billing.Invoice {
	return q.repo.ByGuest(guestID)
}

func (q *billingQueriesImpl) ListByPaymentStatus(_ context.Context, status billing.PaymentStatus) []billing.Invoice {
	return q.repo.ByPaymentStatus(status)
}

func (q *billingQueriesImpl) TotalRevenue(_ context.Context) float64 {
	var total float64
	for _, inv := range q.repo.ByPaymentStatus(billing.PaymentPaid) {
		total += inv.Total
	}
	return total
}

func (q *billingQueriesImpl) DailyRevenue(_ context.Context, day time.Time) float64 {
	var total float64
	for _, inv := range q.repo.ByPaymentStatus(billing.PaymentPaid) {
		if inv.PaidOn(day) {
			total += inv.Total
		}
	}
	return total
}

func (q *billingQueriesImpl) RevenueBetween(_ context.Context, from, to time.Time) float64 {
	var total float64
	for _, inv := range q.repo.ByPaymentStatus(billing.PaymentPaid) {
		if inv.PaidWithin(from, to) {
			total += inv.Total
		}
	}
	return total
}

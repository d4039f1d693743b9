package commands

import (
	"context"
	"time"

	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
)

type BillingCommands interface {
	// GenerateInvoice freezes the reservation's charges into an invoice.
	// At most one invoice exists per reservation: a repeat call returns the
	// existing one unchanged rather than recomputing.
	GenerateInvoice(ctx context.Context, reservationID string) (billing.Invoice, error)

	// ProcessPayment settles a Pending invoice with the given method. Paying
	// an already-settled invoice is a silent no-op.
	ProcessPayment(ctx context.Context, invoiceID string, method billing.PaymentMethod) (billing.Invoice, error)
}

type billingCommandsImpl struct {
	invoices     InvoiceStore
	reservations ReservationStore
	rooms        RoomStore
	activities   ActivityStore
	clock        clock.Clock
}

func NewBillingCommands(
	invoices InvoiceStore,
	reservations ReservationStore,
	rooms RoomStore,
	activities ActivityStore,
	clk clock.Clock,
) BillingCommands {
	return &billingCommandsImpl{
		invoices:     invoices,
		reservations: reservations,
		rooms:        rooms,
		activities:   activities,
		clock:        clk,
	}
}

func (s *billingCommandsImpl) GenerateInvoice(_ context.Context, reservationID string) (billing.Invoice, error) {
	if existing, err := s.invoices.GetByReservation(reservationID); err == nil {
		return existing, nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return billing.Invoice{}, err
	}

	res, err := s.reservations.Get(reservationID)
	if err != nil {
		return billing.Invoice{}, markNotFound(err, errs.ErrReservationNotFound)
	}
	rm, err := s.rooms.Get(res.RoomID)
	if err != nil {
		return billing.Invoice{}, markNotFound(err, errs.ErrRoomNotFound)
	}

	activities := s.activities.ByReservation(res.ID)
	totals := billing.CalculateTotals(&res, rm.Rate, activities)

	inv := billing.Invoice{
		ID:              s.invoices.NextID(),
		ReservationID:   res.ID,
		GuestID:         res.GuestID,
		RoomID:          res.RoomID,
		RoomNumber:      res.RoomNumber,
		CheckIn:         res.CheckIn,
		CheckOut:        checkOutPtr(res.CheckOut),
		RoomCharges:     totals.RoomCharges,
		ActivityCharges: totals.ActivityCharges,
		Tax:             totals.Tax,
		Total:           totals.Total,
		PaymentStatus:   billing.PaymentPending,
		InvoiceDate:     s.clock.Now(),
		Items:           billing.BuildLineItems(&res, rm.Type, rm.Rate, totals, activities),
	}

	created, err := s.invoices.Insert(inv)
	if err != nil {
		return created, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	return created, nil
}

func (s *billingCommandsImpl) ProcessPayment(_ context.Context, invoiceID string, method billing.PaymentMethod) (billing.Invoice, error) {
	if !method.IsValid() {
		return billing.Invoice{}, errs.ErrInvalidStatus
	}
	now := s.clock.Now()
	inv, _, err := s.invoices.Update(invoiceID, func(i *billing.Invoice) bool {
		return i.MarkPaid(method, now)
	})
	if err != nil {
		return billing.Invoice{}, markNotFound(err, errs.ErrInvoiceNotFound)
	}
	return inv, nil
}

func checkOutPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

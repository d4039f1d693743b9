package billing

import "time"

// LineItem is an itemized invoice row. Activity rows carry the activity's
// recorded figures verbatim; the room row carries the computed night count.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Invoice is a frozen charge snapshot of a reservation. Line items and
// monetary figures are immutable after creation; only the payment fields
// change.
type Invoice struct {
	ID              string        `json:"id"`
	ReservationID   string        `json:"reservationId"`
	GuestID         string        `json:"guestId"`
	RoomID          string        `json:"roomId"`
	RoomNumber      string        `json:"roomNumber"`
	CheckIn         time.Time     `json:"checkIn"`
	CheckOut        *time.Time    `json:"checkOut"`
	RoomCharges     float64       `json:"roomCharges"`
	ActivityCharges float64       `json:"activityCharges"`
	Tax             float64       `json:"tax"`
	Total           float64       `json:"total"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethod   *PaymentMethod `json:"paymentMethod"`
	PaymentDate     *time.Time    `json:"paymentDate"`
	InvoiceDate     time.Time     `json:"invoiceDate"`
	Items           []LineItem    `json:"items"`
}

// MarkPaid requires Pending. Returns false without mutating otherwise.
func (i *Invoice) MarkPaid(method PaymentMethod, now time.Time) bool {
	if i.PaymentStatus != PaymentPending {
		return false
	}
	i.PaymentStatus = PaymentPaid
	i.PaymentMethod = &method
	i.PaymentDate = &now
	return true
}

// PaidOn reports whether the invoice was paid on the given calendar day in
// the day's location.
func (i *Invoice) PaidOn(day time.Time) bool {
	if i.PaymentStatus != PaymentPaid || i.PaymentDate == nil {
		return false
	}
	py, pm, pd := i.PaymentDate.In(day.Location()).Date()
	dy, dm, dd := day.Date()
	return py == dy && pm == dm && pd == dd
}

// PaidWithin reports whether the invoice was paid inside [from, to]
// (inclusive bounds, matching the revenue report semantics).
func (i *Invoice) PaidWithin(from, to time.Time) bool {
	if i.PaymentStatus != PaymentPaid || i.PaymentDate == nil {
		return false
	}
	d := *i.PaymentDate
	return !d.Before(from) && !d.After(to)
}

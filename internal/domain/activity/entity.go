package activity

import "time"

// Activity is an ancillary charge linked to a reservation. TotalPrice is
// recorded at creation and carried verbatim onto invoices, never recomputed.
type Activity struct {
	ID            string     `json:"id"`
	ReservationID string     `json:"reservationId"`
	GuestID       string     `json:"guestId"`
	RoomID        string     `json:"roomId"`
	ActivityType  Type       `json:"activityType"`
	Description   string     `json:"description"`
	Quantity      int        `json:"quantity"`
	UnitPrice     float64    `json:"unitPrice"`
	TotalPrice    float64    `json:"totalPrice"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt"`
}

// IsBillable reports whether the activity contributes to invoice charges.
// Pending and Cancelled activities never bill.
func (a *Activity) IsBillable() bool {
	return a.Status == StatusCompleted
}

// MarkCompleted requires Pending. Returns false without mutating otherwise.
func (a *Activity) MarkCompleted(now time.Time) bool {
	if a.Status != StatusPending {
		return false
	}
	a.Status = StatusCompleted
	a.CompletedAt = &now
	return true
}

// SetStatus applies an administrative status override, stamping the
// completion time when it moves to Completed for the first time.
func (a *Activity) SetStatus(status Status, now time.Time) {
	a.Status = status
	if status == StatusCompleted && a.CompletedAt == nil {
		a.CompletedAt = &now
	}
}

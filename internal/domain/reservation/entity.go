package reservation

import "time"

// Reservation references its guest and room by identifier only; RoomNumber is
// a denormalized display snapshot taken at booking time.
//
// Transition methods use the silent-guard policy of the reference system:
// calling a transition from the wrong source state is a no-op, reported via
// the boolean return, never an error. Callers that need stricter semantics
// can branch on the return value.
type Reservation struct {
	ID              string     `json:"id"`
	GuestID         string     `json:"guestId"`
	RoomID          string     `json:"roomId"`
	RoomNumber      string     `json:"roomNumber"`
	CheckIn         time.Time  `json:"checkIn"`
	CheckOut        time.Time  `json:"checkOut"`
	Status          Status     `json:"status"`
	Adults          int        `json:"adults"`
	Children        int        `json:"children"`
	Source          Source     `json:"source"`
	SpecialRequests *string    `json:"specialRequests"`
	CreatedAt       time.Time  `json:"createdAt"`
	CheckedInAt     *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt    *time.Time `json:"checkedOutAt,omitempty"`
}

func (r *Reservation) Stay() StayPeriod {
	return NewStayPeriod(r.CheckIn, r.CheckOut)
}

func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// BlocksStay reports whether this reservation makes the requested interval
// unavailable for its room.
func (r *Reservation) BlocksStay(requested StayPeriod) bool {
	if !r.Status.IsActive() {
		return false
	}
	return r.Stay().Overlaps(requested)
}

// MarkCheckedIn requires Confirmed. Returns false without mutating otherwise.
func (r *Reservation) MarkCheckedIn(now time.Time) bool {
	if r.Status != StatusConfirmed {
		return false
	}
	r.Status = StatusCheckedIn
	r.CheckedInAt = &now
	return true
}

// MarkCheckedOut requires Checked In. Returns false without mutating
// otherwise; in particular checking out a never-checked-in reservation leaves
// it Confirmed with no timestamp set.
func (r *Reservation) MarkCheckedOut(now time.Time) bool {
	if r.Status != StatusCheckedIn {
		return false
	}
	r.Status = StatusCheckedOut
	r.CheckedOutAt = &now
	return true
}

// MarkCancelled requires Confirmed; a stay in progress cannot be cancelled.
func (r *Reservation) MarkCancelled() bool {
	if r.Status != StatusConfirmed {
		return false
	}
	r.Status = StatusCancelled
	return true
}

// MoveToRoom reassigns the room reference and its number snapshot. Room
// status side effects are orchestrated by the command layer, which knows
// whether the guest is physically in the room.
func (r *Reservation) MoveToRoom(roomID, roomNumber string) {
	r.RoomID = roomID
	r.RoomNumber = roomNumber
}

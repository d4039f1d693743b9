package reservation

type Status string

const (
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "Checked In"
	StatusCheckedOut Status = "Checked Out"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation still blocks its room for new
// bookings. Checked Out and Cancelled are terminal and never conflict.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

type Source string

const (
	SourceFrontdesk Source = "Frontdesk"
	SourceOnline    Source = "Online"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	return s == SourceFrontdesk || s == SourceOnline
}

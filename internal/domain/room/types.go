package room

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusOccupied    Status = "Occupied"
	StatusCleaning    Status = "Cleaning"
	StatusMaintenance Status = "Maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance:
		return true
	default:
		return false
	}
}

// IsBookable reports whether the room can be offered for a new booking.
// Cleaning and Maintenance rooms are administratively withheld even when no
// reservation conflicts.
func (s Status) IsBookable() bool {
	return s == StatusAvailable
}

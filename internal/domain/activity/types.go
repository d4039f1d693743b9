package activity

type Type string

const (
	TypeSpaService     Type = "Spa Service"
	TypeRoomService    Type = "Room Service"
	TypeShuttleService Type = "Shuttle Service"
	TypeExtraBed       Type = "Extra Bed"
	TypeAmenities      Type = "Amenities"
	TypeOther          Type = "Other"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSpaService, TypeRoomService, TypeShuttleService, TypeExtraBed, TypeAmenities, TypeOther:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

package room

// Room is the base inventory unit. Status reflects physical state only;
// whether a room is free for given dates is decided against the reservation
// collection, not here.
type Room struct {
	ID           string   `json:"id"`
	Number       string   `json:"number"`
	Type         string   `json:"type"`
	Floor        int      `json:"floor"`
	Rate         float64  `json:"rate"`
	Status       Status   `json:"status"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Amenities    []string `json:"amenities"`
}

func (r *Room) SetStatus(status Status) {
	r.Status = status
}

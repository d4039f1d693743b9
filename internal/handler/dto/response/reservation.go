package response

import (
	"time"

	"hotel-ops/internal/domain/reservation"
)

type ReservationResponse struct {
	ID              string     `json:"id"`
	GuestID         string     `json:"guestId"`
	RoomID          string     `json:"roomId"`
	RoomNumber      string     `json:"roomNumber"`
	CheckIn         time.Time  `json:"checkIn"`
	CheckOut        time.Time  `json:"checkOut"`
	Nights          int        `json:"nights"`
	Status          string     `json:"status"`
	Adults          int        `json:"adults"`
	Children        int        `json:"children"`
	Source          string     `json:"source"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CheckedInAt     *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt    *time.Time `json:"checkedOutAt,omitempty"`
}

func FromReservation(res reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              res.ID,
		GuestID:         res.GuestID,
		RoomID:          res.RoomID,
		RoomNumber:      res.RoomNumber,
		CheckIn:         res.CheckIn,
		CheckOut:        res.CheckOut,
		Nights:          res.Stay().Nights(),
		Status:          res.Status.String(),
		Adults:          res.Adults,
		Children:        res.Children,
		Source:          res.Source.String(),
		SpecialRequests: res.SpecialRequests,
		CreatedAt:       res.CreatedAt,
		CheckedInAt:     res.CheckedInAt,
		CheckedOutAt:    res.CheckedOutAt,
	}
}

func FromReservations(reservations []reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		out[i] = FromReservation(res)
	}
	return out
}

package request

import (
	"strings"
	"time"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/usecase/commands"
)

type CreateReservationRequest struct {
	GuestID         string    `json:"guestId" binding:"required"`
	RoomID          string    `json:"roomId" binding:"required"`
	CheckIn         time.Time `json:"checkIn" binding:"required"`
	CheckOut        time.Time `json:"checkOut" binding:"required"`
	Adults          int       `json:"adults" binding:"required,min=1"`
	Children        int       `json:"children" binding:"min=0"`
	Source          string    `json:"source,omitempty"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		GuestID:         r.GuestID,
		RoomID:          r.RoomID,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Adults:          r.Adults,
		Children:        r.Children,
		Source:          reservation.Source(r.Source),
		SpecialRequests: trimmedOrNil(r.SpecialRequests),
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ShiftRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

type AvailabilityRequest struct {
	CheckIn  time.Time `form:"checkIn" binding:"required" time_format:"2006-01-02"`
	CheckOut time.Time `form:"checkOut" binding:"required" time_format:"2006-01-02"`
	RoomType string    `form:"roomType"`
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package response

import "hotel-ops/internal/domain/room"

type RoomResponse struct {
	ID           string   `json:"id"`
	Number       string   `json:"number"`
	Type         string   `json:"type"`
	Floor        int      `json:"floor"`
	Rate         float64  `json:"rate"`
	Status       string   `json:"status"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Amenities    []string `json:"amenities"`
}

func FromRoom(rm room.Room) RoomResponse {
	return RoomResponse{
		ID:           rm.ID,
		Number:       rm.Number,
		Type:         rm.Type,
		Floor:        rm.Floor,
		Rate:         rm.Rate,
		Status:       rm.Status.String(),
		MaxOccupancy: rm.MaxOccupancy,
		Amenities:    rm.Amenities,
	}
}

func FromRooms(rooms []room.Room) []RoomResponse {
	out := make([]RoomResponse, len(rooms))
	for i, rm := range rooms {
		out[i] = FromRoom(rm)
	}
	return out
}

type AvailabilityResponse struct {
	Available bool     `json:"available,omitempty"`
	RoomIDs   []string `json:"roomIds"`
}

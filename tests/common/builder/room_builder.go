//go:build unit || e2e

package builder

import (
	"hotel-ops/internal/domain/room"
)

type RoomBuilder struct {
	ID           string
	Number       string
	Type         string
	Floor        int
	Rate         float64
	Status       room.Status
	MaxOccupancy int
	Amenities    []string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           "RM001",
		Number:       "101",
		Type:         "Standard",
		Floor:        1,
		Rate:         100,
		Status:       room.StatusAvailable,
		MaxOccupancy: 2,
		Amenities:    []string{"WiFi", "TV"},
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) Build() room.Room {
	return room.Room{
		ID:           b.ID,
		Number:       b.Number,
		Type:         b.Type,
		Floor:        b.Floor,
		Rate:         b.Rate,
		Status:       b.Status,
		MaxOccupancy: b.MaxOccupancy,
		Amenities:    b.Amenities,
	}
}

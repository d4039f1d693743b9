//go:build unit || e2e

package builder

import (
	"time"

	"hotel-ops/internal/domain/activity"
)

type ActivityBuilder struct {
	ID            string
	ReservationID string
	GuestID       string
	RoomID        string
	ActivityType  activity.Type
	Description   string
	Quantity      int
	UnitPrice     float64
	Status        activity.Status
	CreatedAt     time.Time
}

func NewActivityBuilder() *ActivityBuilder {
	return &ActivityBuilder{
		ID:            "ACT001",
		ReservationID: "RES001",
		GuestID:       "G001",
		RoomID:        "RM001",
		ActivityType:  activity.TypeRoomService,
		Description:   "Breakfast in room",
		Quantity:      1,
		UnitPrice:     25,
		Status:        activity.StatusCompleted,
		CreatedAt:     time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
	}
}

func (b *ActivityBuilder) With(mutate func(*ActivityBuilder)) *ActivityBuilder {
	mutate(b)
	return b
}

func (b *ActivityBuilder) Build() activity.Activity {
	return activity.Activity{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		GuestID:       b.GuestID,
		RoomID:        b.RoomID,
		ActivityType:  b.ActivityType,
		Description:   b.Description,
		Quantity:      b.Quantity,
		UnitPrice:     b.UnitPrice,
		TotalPrice:    b.UnitPrice * float64(b.Quantity),
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

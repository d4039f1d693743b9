//go:build unit || e2e

package builder

import (
	"time"

	"hotel-ops/internal/domain/reservation"
)

type ReservationBuilder struct {
	ID         string
	GuestID    string
	RoomID     string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Status     reservation.Status
	Adults     int
	Children   int
	Source     reservation.Source
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         "RES001",
		GuestID:    "G001",
		RoomID:     "RM001",
		RoomNumber: "101",
		CheckIn:    time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC),
		Status:     reservation.StatusConfirmed,
		Adults:     2,
		Children:   0,
		Source:     reservation.SourceFrontdesk,
		CreatedAt:  time.Date(2023, 12, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build() reservation.Reservation {
	return reservation.Reservation{
		ID:         b.ID,
		GuestID:    b.GuestID,
		RoomID:     b.RoomID,
		RoomNumber: b.RoomNumber,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     b.Status,
		Adults:     b.Adults,
		Children:   b.Children,
		Source:     b.Source,
		CreatedAt:  b.CreatedAt,
	}
}

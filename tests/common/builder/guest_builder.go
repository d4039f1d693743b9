//go:build unit || e2e

package builder

import (
	"time"

	"hotel-ops/internal/domain/guest"
)

type GuestBuilder struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	IDNumber  string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:        "G001",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria.santos@example.com",
		Phone:     "+63 912 345 6789",
		IDNumber:  "P1234567",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) Build() guest.Guest {
	return guest.Guest{
		ID:        b.ID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Phone:     b.Phone,
		IDType:    "Passport",
		IDNumber:  b.IDNumber,
		CreatedAt: time.Date(2023, 11, 1, 9, 0, 0, 0, time.UTC),
	}
}

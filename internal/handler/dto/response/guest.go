package response

import (
	"time"

	"hotel-ops/internal/domain/guest"
)

type GuestResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Nationality   string    `json:"nationality"`
	IDType        string    `json:"idType"`
	IDNumber      string    `json:"idNumber"`
	Preferences   []string  `json:"preferences"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromGuest(g guest.Guest) GuestResponse {
	return GuestResponse{
		ID:            g.ID,
		FirstName:     g.FirstName,
		LastName:      g.LastName,
		Email:         g.Email,
		Phone:         g.Phone,
		Address:       g.Address,
		Nationality:   g.Nationality,
		IDType:        g.IDType,
		IDNumber:      g.IDNumber,
		Preferences:   g.Preferences,
		LoyaltyPoints: g.LoyaltyPoints,
		CreatedAt:     g.CreatedAt,
	}
}

func FromGuests(guests []guest.Guest) []GuestResponse {
	out := make([]GuestResponse, len(guests))
	for i, g := range guests {
		out[i] = FromGuest(g)
	}
	return out
}

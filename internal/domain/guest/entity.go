package guest

import (
	"strings"
	"time"
)

type Guest struct {
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

// Matches implements the front-desk search: case-insensitive on names and
// email, substring on phone and ID number.
func (g *Guest) Matches(query string) bool {
	lower := strings.ToLower(query)
	return strings.Contains(strings.ToLower(g.FirstName), lower) ||
		strings.Contains(strings.ToLower(g.LastName), lower) ||
		strings.Contains(strings.ToLower(g.Email), lower) ||
		strings.Contains(g.Phone, query) ||
		strings.Contains(g.IDNumber, query)
}

func (g *Guest) AddLoyaltyPoints(points int) {
	g.LoyaltyPoints += points
}

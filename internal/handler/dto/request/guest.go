package request

import "hotel-ops/internal/usecase/commands"

type CreateGuestRequest struct {
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required"`
	Address     string   `json:"address"`
	Nationality string   `json:"nationality"`
	IDType      string   `json:"idType"`
	IDNumber    string   `json:"idNumber"`
	Preferences []string `json:"preferences"`
}

func (r CreateGuestRequest) ToParams() commands.CreateGuestParams {
	return commands.CreateGuestParams{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Nationality: r.Nationality,
		IDType:      r.IDType,
		IDNumber:    r.IDNumber,
		Preferences: r.Preferences,
	}
}

type UpdateGuestRequest struct {
	FirstName   *string  `json:"firstName,omitempty"`
	LastName    *string  `json:"lastName,omitempty"`
	Email       *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string  `json:"phone,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Nationality *string  `json:"nationality,omitempty"`
	IDType      *string  `json:"idType,omitempty"`
	IDNumber    *string  `json:"idNumber,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

func (r UpdateGuestRequest) ToParams() commands.UpdateGuestParams {
	return commands.UpdateGuestParams{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Nationality: r.Nationality,
		IDType:      r.IDType,
		IDNumber:    r.IDNumber,
		Preferences: r.Preferences,
	}
}

type AddLoyaltyPointsRequest struct {
	Points int `json:"points" binding:"required,min=1"`
}

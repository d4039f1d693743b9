package commands

import (
	"context"

	"hotel-ops/internal/domain/guest"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
)

type CreateGuestParams struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	Nationality string
	IDType      string
	IDNumber    string
	Preferences []string
}

type UpdateGuestParams struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Address     *string
	Nationality *string
	IDType      *string
	IDNumber    *string
	Preferences []string
}

type GuestCommands interface {
	Create(ctx context.Context, params CreateGuestParams) (guest.Guest, error)
	Update(ctx context.Context, id string, params UpdateGuestParams) (guest.Guest, error)
	AddLoyaltyPoints(ctx context.Context, id string, points int) (guest.Guest, error)
}

type guestCommandsImpl struct {
	guests GuestStore
	clock  clock.Clock
}

func NewGuestCommands(guests GuestStore, clk clock.Clock) GuestCommands {
	return &guestCommandsImpl{guests: guests, clock: clk}
}

func (s *guestCommandsImpl) Create(_ context.Context, params CreateGuestParams) (guest.Guest, error) {
	g := guest.Guest{
		ID:          s.guests.NextID(),
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Email:       params.Email,
		Phone:       params.Phone,
		Address:     params.Address,
		Nationality: params.Nationality,
		IDType:      params.IDType,
		IDNumber:    params.IDNumber,
		Preferences: params.Preferences,
		CreatedAt:   s.clock.Now(),
	}

	created, err := s.guests.Insert(g)
	if err != nil {
		return created, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	return created, nil
}

// Update applies a partial profile edit; nil fields keep their current value.
func (s *guestCommandsImpl) Update(_ context.Context, id string, params UpdateGuestParams) (guest.Guest, error) {
	g, _, err := s.guests.Update(id, func(g *guest.Guest) bool {
		applyIfSet(&g.FirstName, params.FirstName)
		applyIfSet(&g.LastName, params.LastName)
		applyIfSet(&g.Email, params.Email)
		applyIfSet(&g.Phone, params.Phone)
		applyIfSet(&g.Address, params.Address)
		applyIfSet(&g.Nationality, params.Nationality)
		applyIfSet(&g.IDType, params.IDType)
		applyIfSet(&g.IDNumber, params.IDNumber)
		if params.Preferences != nil {
			g.Preferences = params.Preferences
		}
		return true
	})
	if err != nil {
		return guest.Guest{}, markNotFound(err, errs.ErrGuestNotFound)
	}
	return g, nil
}

func (s *guestCommandsImpl) AddLoyaltyPoints(_ context.Context, id string, points int) (guest.Guest, error) {
	g, _, err := s.guests.Update(id, func(g *guest.Guest) bool {
		g.AddLoyaltyPoints(points)
		return true
	})
	if err != nil {
		return guest.Guest{}, markNotFound(err, errs.ErrGuestNotFound)
	}
	return g, nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

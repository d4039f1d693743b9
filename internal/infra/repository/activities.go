package repository

import (
	"log/slog"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/pkg/ident"
)

const activityIDPrefix = "ACT"

type Activities struct {
	c *collection[activity.Activity]
}

func NewActivities(store kvstore.Store, logger *slog.Logger, seed []activity.Activity) *Activities {
	return &Activities{
		c: newCollection(store, logger, kvstore.KeyActivities,
			func(a *activity.Activity) string { return a.ID }, seed, false),
	}
}

func (a *Activities) All() []activity.Activity {
	return a.c.all()
}

func (a *Activities) Get(id string) (activity.Activity, error) {
	return a.c.get(id)
}

func (a *Activities) ByReservation(reservationID string) []activity.Activity {
	return a.c.filter(func(act *activity.Activity) bool { return act.ReservationID == reservationID })
}

func (a *Activities) ByGuest(guestID string) []activity.Activity {
	return a.c.filter(func(act *activity.Activity) bool { return act.GuestID == guestID })
}

func (a *Activities) ByStatus(status activity.Status) []activity.Activity {
	return a.c.filter(func(act *activity.Activity) bool { return act.Status == status })
}

func (a *Activities) NextID() string {
	return ident.Next(activityIDPrefix, a.c.ids())
}

func (a *Activities) Insert(act activity.Activity) (activity.Activity, error) {
	return a.c.insert(act)
}

func (a *Activities) Update(id string, fn func(*activity.Activity) bool) (activity.Activity, bool, error) {
	return a.c.mutate(id, fn)
}

func (a *Activities) ResetToSeed() error {
	return a.c.resetToSeed()
}

func (a *Activities) Clear() error {
	return a.c.clear()
}

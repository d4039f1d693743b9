package repository

import (
	"log/slog"

	"hotel-ops/internal/domain/guest"
	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/pkg/ident"
)

const guestIDPrefix = "G"

type Guests struct {
	c *collection[guest.Guest]
}

func NewGuests(store kvstore.Store, logger *slog.Logger, seed []guest.Guest, startEmpty bool) *Guests {
	return &Guests{
		c: newCollection(store, logger, kvstore.KeyGuests,
			func(g *guest.Guest) string { return g.ID }, seed, startEmpty),
	}
}

func (g *Guests) All() []guest.Guest {
	return g.c.all()
}

func (g *Guests) Get(id string) (guest.Guest, error) {
	return g.c.get(id)
}

func (g *Guests) Search(query string) []guest.Guest {
	return g.c.filter(func(gu *guest.Guest) bool { return gu.Matches(query) })
}

func (g *Guests) Count() int {
	return g.c.count()
}

func (g *Guests) NextID() string {
	return ident.Next(guestIDPrefix, g.c.ids())
}

func (g *Guests) Insert(gu guest.Guest) (guest.Guest, error) {
	return g.c.insert(gu)
}

func (g *Guests) Update(id string, fn func(*guest.Guest) bool) (guest.Guest, bool, error) {
	return g.c.mutate(id, fn)
}

func (g *Guests) ResetToSeed() error {
	return g.c.resetToSeed()
}

func (g *Guests) Clear() error {
	return g.c.clear()
}

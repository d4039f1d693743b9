package queries

import (
	"context"
	"strings"

	"hotel-ops/internal/domain/guest"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
)

type GuestQueries interface {
	GetByID(ctx context.Context, id string) (guest.Guest, error)
	List(ctx context.Context) []guest.Guest
	Search(ctx context.Context, query string) []guest.Guest
}

type guestQueriesImpl struct {
	repo GuestReadStore
}

func NewGuestQueries(repo GuestReadStore) GuestQueries {
	return &guestQueriesImpl{repo: repo}
}

func (q *guestQueriesImpl) GetByID(_ context.Context, id string) (guest.Guest, error) {
	g, err := q.repo.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return guest.Guest{}, errs.ErrGuestNotFound
		}
		return guest.Guest{}, err
	}
	return g, nil
}

func (q *guestQueriesImpl) List(_ context.Context) []guest.Guest {
	return q.repo.All()
}

func (q *guestQueriesImpl) Search(_ context.Context, query string) []guest.Guest {
	if strings.TrimSpace(query) == "" {
		return q.repo.All()
	}
	return q.repo.Search(query)
}

package queries

import (
	"context"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
)

type ActivityQueries interface {
	GetByID(ctx context.Context, id string) (activity.Activity, error)
	List(ctx context.Context) []activity.Activity
	ListByReservation(ctx context.Context, reservationID string) []activity.Activity
	ListByGuest(ctx context.Context, guestID string) []activity.Activity
	ListByStatus(ctx context.Context, status activity.Status) []activity.Activity
}

type activityQueriesImpl struct {
	repo ActivityReadStore
}

func NewActivityQueries(repo ActivityReadStore) ActivityQueries {
	return &activityQueriesImpl{repo: repo}
}

func (q *activityQueriesImpl) GetByID(_ context.Context, id string) (activity.Activity, error) {
	act, err := q.repo.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return activity.Activity{}, errs.ErrActivityNotFound
		}
		return activity.Activity{}, err
	}
	return act, nil
}

func (q *activityQueriesImpl) List(_ context.Context) []activity.Activity {
	return q.repo.All()
}

func (q *activityQueriesImpl) ListByReservation(_ context.Context, reservationID string) []activity.Activity {
	return q.repo.ByReservation(reservationID)
}

func (q *activityQueriesImpl) ListByGuest(_ context.Context, guestID string) []activity.Activity {
	return q.repo.ByGuest(guestID)
}

func (q *activityQueriesImpl) ListByStatus(_ context.Context, status activity.Status) []activity.Activity {
	return q.repo.ByStatus(status)
}

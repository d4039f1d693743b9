package queries

import (
	"context"

	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id string) (reservation.Reservation, error)
	List(ctx context.Context) []reservation.Reservation
	ListByGuest(ctx context.Context, guestID string) []reservation.Reservation
	ListByRoom(ctx context.Context, roomID string) []reservation.Reservation
	ListByStatus(ctx context.Context, status reservation.Status) []reservation.Reservation
	ListActive(ctx context.Context) []reservation.Reservation
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(_ context.Context, id string) (reservation.Reservation, error) {
	res, err := q.repo.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.Reservation{}, errs.ErrReservationNotFound
		}
		return reservation.Reservation{}, err
	}
	return res, nil
}

func (q *reservationQueriesImpl) List(_ context.Context) []reservation.Reservation {
	return q.repo.All()
}

func (q *reservationQueriesImpl) ListByGuest(_ context.Context, guestID string) []reservation.Reservation {
	return q.repo.ByGuest(guestID)
}

func (q *reservationQueriesImpl) ListByRoom(_ context.Context, roomID string) []reservation.Reservation {
	return q.repo.ByRoom(roomID)
}

func (q *reservationQueriesImpl) ListByStatus(_ context.Context, status reservation.Status) []reservation.Reservation {
	return q.repo.ByStatus(status)
}

func (q *reservationQueriesImpl) ListActive(_ context.Context) []reservation.Reservation {
	return q.repo.Active()
}

package commands

import (
	"context"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
)

type CreateActivityParams struct {
	ReservationID string
	ActivityType  activity.Type
	Description   string
	Quantity      int
	UnitPrice     float64
}

type ActivityCommands interface {
	Create(ctx context.Context, params CreateActivityParams) (activity.Activity, error)
	Complete(ctx context.Context, id string) (activity.Activity, error)
	UpdateStatus(ctx context.Context, id string, status activity.Status) (activity.Activity, error)
}

type activityCommandsImpl struct {
	activities   ActivityStore
	reservations ReservationStore
	clock        clock.Clock
}

func NewActivityCommands(activities ActivityStore, reservations ReservationStore, clk clock.Clock) ActivityCommands {
	return &activityCommandsImpl{activities: activities, reservations: reservations, clock: clk}
}

// Create books a service against a reservation. The total is frozen at
// booking time; later price changes never reprice a recorded activity.
// The guest and room references are denormalized from the reservation.
func (s *activityCommandsImpl) Create(_ context.Context, params CreateActivityParams) (activity.Activity, error) {
	if !params.ActivityType.IsValid() {
		return activity.Activity{}, errs.ErrInvalidStatus
	}
	res, err := s.reservations.Get(params.ReservationID)
	if err != nil {
		return activity.Activity{}, markNotFound(err, errs.ErrReservationNotFound)
	}

	act := activity.Activity{
		ID:            s.activities.NextID(),
		ReservationID: res.ID,
		GuestID:       res.GuestID,
		RoomID:        res.RoomID,
		ActivityType:  params.ActivityType,
		Description:   params.Description,
		Quantity:      params.Quantity,
		UnitPrice:     params.UnitPrice,
		TotalPrice:    params.UnitPrice * float64(params.Quantity),
		Status:        activity.StatusPending,
		CreatedAt:     s.clock.Now(),
	}

	created, err := s.activities.Insert(act)
	if err != nil {
		return created, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	return created, nil
}

// Complete moves Pending → Completed, making the activity billable. Any
// other source state is a silent no-op.
func (s *activityCommandsImpl) Complete(_ context.Context, id string) (activity.Activity, error) {
	now := s.clock.Now()
	act, _, err := s.activities.Update(id, func(a *activity.Activity) bool {
		return a.MarkCompleted(now)
	})
	if err != nil {
		return activity.Activity{}, markNotFound(err, errs.ErrActivityNotFound)
	}
	return act, nil
}

func (s *activityCommandsImpl) UpdateStatus(_ context.Context, id string, status activity.Status) (activity.Activity, error) {
	if !status.IsValid() {
		return activity.Activity{}, errs.ErrInvalidStatus
	}
	now := s.clock.Now()
	act, _, err := s.activities.Update(id, func(a *activity.Activity) bool {
		a.SetStatus(status, now)
		return true
	})
	if err != nil {
		return activity.Activity{}, markNotFound(err, errs.ErrActivityNotFound)
	}
	return act, nil
}

package commands

import (
	"context"

	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/pkg/errs"
	"log/slog"
)

// SimulationCommands controls the dataset as a whole: restoring the seed
// snapshot, wiping transactional data, or flagging the next startup to begin
// with empty guest and reservation collections.
type SimulationCommands interface {
	// ResetAll restores every collection to its seed snapshot.
	ResetAll(ctx context.Context) error

	// ClearGuestsAndReservations empties guests and reservations only,
	// leaving rooms, tasks, activities and invoices untouched.
	ClearGuestsAndReservations(ctx context.Context) error

	// ClearAll empties every transactional collection. Rooms are preserved:
	// the physical inventory exists regardless of bookings.
	ClearAll(ctx context.Context) error

	// SetStartEmpty records whether the next startup seeds guests and
	// reservations or begins with those collections empty.
	SetStartEmpty(ctx context.Context, enable bool) error
}

type simulationCommandsImpl struct {
	rooms        RoomStore
	guests       GuestStore
	reservations ReservationStore
	activities   ActivityStore
	tasks        TaskStore
	invoices     InvoiceStore
	store        kvstore.Store
	logger       *slog.Logger
}

func NewSimulationCommands(
	rooms RoomStore,
	guests GuestStore,
	reservations ReservationStore,
	activities ActivityStore,
	tasks TaskStore,
	invoices InvoiceStore,
	store kvstore.Store,
	logger *slog.Logger,
) SimulationCommands {
	return &simulationCommandsImpl{
		rooms:        rooms,
		guests:       guests,
		reservations: reservations,
		activities:   activities,
		tasks:        tasks,
		invoices:     invoices,
		store:        store,
		logger:       logger,
	}
}

func (s *simulationCommandsImpl) ResetAll(_ context.Context) error {
	steps := []func() error{
		s.rooms.ResetToSeed,
		s.guests.ResetToSeed,
		s.reservations.ResetToSeed,
		s.activities.ResetToSeed,
		s.tasks.ResetToSeed,
		s.invoices.ResetToSeed,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return errs.Mark(err, errs.ErrPersistenceFailed)
		}
	}
	return nil
}

func (s *simulationCommandsImpl) ClearGuestsAndReservations(_ context.Context) error {
	if err := s.guests.Clear(); err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailed)
	}
	if err := s.reservations.Clear(); err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailed)
	}
	return nil
}

func (s *simulationCommandsImpl) ClearAll(_ context.Context) error {
	steps := []func() error{
		s.guests.Clear,
		s.reservations.Clear,
		s.activities.Clear,
		s.tasks.Clear,
		s.invoices.Clear,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return errs.Mark(err, errs.ErrPersistenceFailed)
		}
	}
	return nil
}

func (s *simulationCommandsImpl) SetStartEmpty(_ context.Context, enable bool) error {
	if err := kvstore.SetStartEmpty(s.store, enable); err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailed)
	}
	s.logger.Info("start-empty flag updated", slog.Bool("enabled", enable))
	return nil
}

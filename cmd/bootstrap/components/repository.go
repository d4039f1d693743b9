package components

import (
	"log/slog"

	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/infra/seed"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewRooms,
			fx.As(new(commands.RoomStore)),
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			NewGuests,
			fx.As(new(commands.GuestStore)),
			fx.As(new(queries.GuestReadStore)),
		),
		fx.Annotate(
			NewReservations,
			fx.As(new(commands.ReservationStore)),
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			NewActivities,
			fx.As(new(commands.ActivityStore)),
			fx.As(new(queries.ActivityReadStore)),
		),
		fx.Annotate(
			NewTasks,
			fx.As(new(commands.TaskStore)),
			fx.As(new(queries.TaskReadStore)),
		),
		fx.Annotate(
			NewInvoices,
			fx.As(new(commands.InvoiceStore)),
			fx.As(new(queries.InvoiceReadStore)),
		),
	),
)

func NewRooms(store kvstore.Store, logger *slog.Logger, data *seed.Data) *repository.Rooms {
	return repository.NewRooms(store, logger, data.Rooms)
}

func NewGuests(store kvstore.Store, logger *slog.Logger, data *seed.Data, startEmpty StartEmptyFlag) *repository.Guests {
	return repository.NewGuests(store, logger, data.Guests, bool(startEmpty))
}

func NewReservations(store kvstore.Store, logger *slog.Logger, data *seed.Data, startEmpty StartEmptyFlag) *repository.Reservations {
	return repository.NewReservations(store, logger, data.Reservations, bool(startEmpty))
}

func NewActivities(store kvstore.Store, logger *slog.Logger, data *seed.Data) *repository.Activities {
	return repository.NewActivities(store, logger, data.Activities)
}

func NewTasks(store kvstore.Store, logger *slog.Logger, data *seed.Data) *repository.Tasks {
	return repository.NewTasks(store, logger, data.Tasks)
}

func NewInvoices(store kvstore.Store, logger *slog.Logger, data *seed.Data) *repository.Invoices {
	return repository.NewInvoices(store, logger, data.Invoices)
}

package components

import (
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewActivityQueries,
		queries.NewTaskQueries,
		queries.NewBillingQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewGuestCommands,
		commands.NewActivityCommands,
		commands.NewHousekeepingCommands,
		commands.NewBillingCommands,
		commands.NewSimulationCommands,
	),
)

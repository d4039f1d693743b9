package components

import (
	"hotel-ops/internal/handler"
	"hotel-ops/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewReservationHandler,
		api.NewActivityHandler,
		api.NewHousekeepingHandler,
		api.NewBillingHandler,
		api.NewSimulationHandler,
		api.NewDashboardHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	rooms *api.RoomHandler,
	guests *api.GuestHandler,
	reservations *api.ReservationHandler,
	activities *api.ActivityHandler,
	housekeeping *api.HousekeepingHandler,
	billing *api.BillingHandler,
	simulation *api.SimulationHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Rooms:        rooms,
		Guests:       guests,
		Reservations: reservations,
		Activities:   activities,
		Housekeeping: housekeeping,
		Billing:      billing,
		Simulation:   simulation,
		Dashboard:    dashboard,
	}
}

package queries

import (
	"context"

	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/room"
)

// DashboardView is the UI-facing aggregate snapshot, computed on demand from
// the current collections rather than pushed reactively.
type DashboardView struct {
	TotalRooms       int     `json:"totalRooms"`
	AvailableRooms   int     `json:"availableRooms"`
	OccupiedRooms    int     `json:"occupiedRooms"`
	CleaningRooms    int     `json:"cleaningRooms"`
	MaintenanceRooms int     `json:"maintenanceRooms"`
	OccupancyRate    int     `json:"occupancyRate"`
	TotalGuests      int     `json:"totalGuests"`
	ActiveBookings   int     `json:"activeBookings"`
	PendingTasks     int     `json:"pendingTasks"`
	PendingInvoices  int     `json:"pendingInvoices"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

type DashboardQueries interface {
	Snapshot(ctx context.Context) DashboardView
}

type dashboardQueriesImpl struct {
	rooms        RoomReadStore
	guests       GuestReadStore
	reservations ReservationReadStore
	tasks        TaskReadStore
	billing      BillingQueries
	invoices     InvoiceReadStore
}

func NewDashboardQueries(
	rooms RoomReadStore,
	guests GuestReadStore,
	reservations ReservationReadStore,
	tasks TaskReadStore,
	billingQueries BillingQueries,
	invoices InvoiceReadStore,
) DashboardQueries {
	return &dashboardQueriesImpl{
		rooms:        rooms,
		guests:       guests,
		reservations: reservations,
		tasks:        tasks,
		billing:      billingQueries,
		invoices:     invoices,
	}
}

func (q *dashboardQueriesImpl) Snapshot(ctx context.Context) DashboardView {
	occupied := len(q.rooms.ByStatus(room.StatusOccupied))
	total := q.rooms.Count()

	return DashboardView{
		TotalRooms:       total,
		AvailableRooms:   len(q.rooms.ByStatus(room.StatusAvailable)),
		OccupiedRooms:    occupied,
		CleaningRooms:    len(q.rooms.ByStatus(room.StatusCleaning)),
		MaintenanceRooms: len(q.rooms.ByStatus(room.StatusMaintenance)),
		OccupancyRate:    billing.CalculateOccupancyRate(total, occupied),
		TotalGuests:      q.guests.Count(),
		ActiveBookings:   len(q.reservations.Active()),
		PendingTasks:     len(q.tasks.ByStatus(housekeeping.StatusPending)),
		PendingInvoices:  len(q.invoices.ByPaymentStatus(billing.PaymentPending)),
		TotalRevenue:     q.billing.TotalRevenue(ctx),
	}
}

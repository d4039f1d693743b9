package response

import "hotel-ops/internal/usecase/queries"

type DashboardResponse struct {
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

func FromDashboardView(v queries.DashboardView) DashboardResponse {
	return DashboardResponse{
		TotalRooms:       v.TotalRooms,
		AvailableRooms:   v.AvailableRooms,
		OccupiedRooms:    v.OccupiedRooms,
		CleaningRooms:    v.CleaningRooms,
		MaintenanceRooms: v.MaintenanceRooms,
		OccupancyRate:    v.OccupancyRate,
		TotalGuests:      v.TotalGuests,
		ActiveBookings:   v.ActiveBookings,
		PendingTasks:     v.PendingTasks,
		PendingInvoices:  v.PendingInvoices,
		TotalRevenue:     v.TotalRevenue,
	}
}

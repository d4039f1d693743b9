package kvstore

// Collection keys. One snapshot per collection, same keyspace the original
// single-profile deployment used.
const (
	KeyRooms        = "hotel_rooms"
	KeyGuests       = "hotel_guests"
	KeyReservations = "hotel_reservations"
	KeyHousekeeping = "hotel_housekeeping"
	KeyActivities   = "hotel_activities"
	KeyBilling      = "hotel_billing"
	KeyStartEmpty   = "hotel_start_empty"
)

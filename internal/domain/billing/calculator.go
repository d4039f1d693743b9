package billing

import (
	"fmt"
	"math"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/domain/reservation"
)

// TaxRate is applied to the combined room and activity subtotal.
const TaxRate = 0.12

// Round2 rounds half-up to two decimal places. Each monetary output figure
// is rounded independently; the total is rounded after the already-rounded
// tax has been added, which is not the same as rounding once at the end.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Totals holds the four rounded invoice figures.
type Totals struct {
	RoomCharges     float64
	ActivityCharges float64
	Tax             float64
	Total           float64
}

// CalculateRoomCharges bills rate per night over the stay. An open stay
// (no check-out date) bills zero room nights.
func CalculateRoomCharges(rate float64, stay reservation.StayPeriod) float64 {
	if !stay.HasCheckOut() {
		return 0
	}
	return rate * float64(stay.Nights())
}

// CalculateActivityCharges sums the recorded total price of billable
// (Completed) activities only.
func CalculateActivityCharges(activities []activity.Activity) float64 {
	var total float64
	for _, a := range activities {
		if a.IsBillable() {
			total += a.TotalPrice
		}
	}
	return total
}

// CalculateTotals produces the invoice figures for a reservation at the given
// nightly rate. Tax is computed from the unrounded subtotal, rounded, and the
// grand total is rounded again on top of the rounded tax.
func CalculateTotals(res *reservation.Reservation, roomRate float64, activities []activity.Activity) Totals {
	roomCharges := CalculateRoomCharges(roomRate, res.Stay())
	activityCharges := CalculateActivityCharges(activities)
	subtotal := roomCharges + activityCharges
	tax := Round2(subtotal * TaxRate)

	return Totals{
		RoomCharges:     Round2(roomCharges),
		ActivityCharges: Round2(activityCharges),
		Tax:             tax,
		Total:           Round2(subtotal + tax),
	}
}

// BuildLineItems renders one room-charge row (when room nights were billed)
// followed by one row per billable activity, with the activity's recorded
// figures carried verbatim.
func BuildLineItems(res *reservation.Reservation, roomType string, roomRate float64, totals Totals, activities []activity.Activity) []LineItem {
	var items []LineItem

	if totals.RoomCharges > 0 && res.Stay().HasCheckOut() {
		nights := res.Stay().Nights()
		plural := ""
		if nights > 1 {
			plural = "s"
		}
		items = append(items, LineItem{
			Description: fmt.Sprintf("Room %s - %s (%d night%s)", res.RoomNumber, roomType, nights, plural),
			Quantity:    nights,
			UnitPrice:   roomRate,
			Total:       totals.RoomCharges,
		})
	}

	for _, a := range activities {
		if !a.IsBillable() {
			continue
		}
		items = append(items, LineItem{
			Description: a.Description,
			Quantity:    a.Quantity,
			UnitPrice:   a.UnitPrice,
			Total:       a.TotalPrice,
		})
	}

	return items
}

// CalculateOccupancyRate is the dashboard aggregate: occupied over total as a
// whole percentage, zero when there are no rooms.
func CalculateOccupancyRate(totalRooms, occupiedRooms int) int {
	if totalRooms == 0 {
		return 0
	}
	return int(math.Round(float64(occupiedRooms) / float64(totalRooms) * 100))
}

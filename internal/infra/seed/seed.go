// Package seed holds the default datasets used to populate a collection when
// no persisted snapshot exists, and on explicit simulation reset.
package seed

import (
	"embed"
	"encoding/json"

	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/domain/billing"
	"hotel-ops/internal/domain/guest"
	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/pkg/errs"
)

//go:embed data/*.json
var files embed.FS

type Data struct {
	Rooms        []room.Room
	Guests       []guest.Guest
	Reservations []reservation.Reservation
	Tasks        []housekeeping.Task
	Activities   []activity.Activity
	Invoices     []billing.Invoice
}

// Load parses the embedded datasets. Failure here is a build defect, not a
// runtime condition, so the caller treats it as fatal.
func Load() (*Data, error) {
	var d Data
	for name, target := range map[string]any{
		"rooms":        &d.Rooms,
		"guests":       &d.Guests,
		"reservations": &d.Reservations,
		"housekeeping": &d.Tasks,
		"activities":   &d.Activities,
		"billing":      &d.Invoices,
	} {
		raw, err := files.ReadFile("data/" + name + ".json")
		if err != nil {
			return nil, errs.Wrap(err, "missing embedded seed "+name)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, errs.Wrap(err, "malformed embedded seed "+name)
		}
	}
	return &d, nil
}

package reservation

import (
	"math"
	"time"
)

// StayPeriod is a half-open interval [CheckIn, CheckOut): the check-out
// instant itself is not occupied, so back-to-back stays never conflict.
type StayPeriod struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{CheckIn: checkIn, CheckOut: checkOut}
}

// Nights returns the billable night count: the day difference rounded up,
// floored at one night. Same-day and inverted inputs yield 1 rather than an
// error; callers are expected not to feed inverted ranges in production data.
func (p StayPeriod) Nights() int {
	diff := p.CheckOut.Sub(p.CheckIn)
	nights := int(math.Ceil(diff.Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// Overlaps applies the strict half-open rule: the intervals intersect iff
// each starts before the other ends. Comparison is by absolute instant,
// never by calendar-day truncation.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(p.CheckOut)
}

// HasCheckOut reports whether a check-out date is set. An open stay is not
// billed for room nights until its check-out is known.
func (p StayPeriod) HasCheckOut() bool {
	return !p.CheckOut.IsZero()
}

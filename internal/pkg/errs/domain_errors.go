package errs

import "errors"

// Sentinel errors shared across usecase layers. Handlers branch on these to
// pick HTTP statuses, so they must stay matchable with errors.Is.
var (
	// Lookup failures
	ErrRoomNotFound        = errors.New("room not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrTaskNotFound        = errors.New("housekeeping task not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")

	// Booking errors
	ErrRoomUnavailable = errors.New("room not available for the requested dates")
	ErrInvalidStay     = errors.New("invalid stay period")
	ErrInvalidStatus   = errors.New("invalid status value")

	// Persistence errors
	ErrPersistenceFailed = errors.New("failed to persist collection")
)

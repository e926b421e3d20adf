package commands

import "fleet-booking/internal/pkg/errs"

// Booking error taxonomy. Each sentinel tells the caller whether to fix
// the input, choose a different vehicle or window, or substitute another
// client; none are retried here.
var (
	ErrIneligibleClient   = errs.New("client is not eligible for new bookings")
	ErrVehicleUnavailable = errs.New("vehicle is not available for the requested window")
	ErrInvalidDates       = errs.New("invalid dates")
	ErrInvalidOdometer    = errs.New("invalid odometer reading")
	ErrNotFound           = errs.New("not found")
	ErrIllegalTransition  = errs.New("state transition not permitted")
	ErrValidation         = errs.New("validation failed")
	ErrDuplicate          = errs.New("duplicate record")
	ErrStorage            = errs.New("storage failure")
)

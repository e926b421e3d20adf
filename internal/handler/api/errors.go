package api

import (
	"errors"
	"net/http"

	"fleet-booking/internal/handler/httperr"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// abortBookingError maps the booking error taxonomy onto HTTP statuses.
// Every command funnels through here so the wire contract stays uniform.
func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrIneligibleClient):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "INELIGIBLE_CLIENT", "Client is not eligible for new bookings", nil)
	case errors.Is(err, commands.ErrVehicleUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "VEHICLE_UNAVAILABLE", "Vehicle is not available for the requested window", nil)
	case errors.Is(err, commands.ErrInvalidDates):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_DATES", "Invalid dates", nil)
	case errors.Is(err, commands.ErrInvalidOdometer):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ODOMETER", "Invalid odometer reading", nil)
	case errors.Is(err, commands.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "NOT_FOUND", "Not found", nil)
	case errors.Is(err, commands.ErrIllegalTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "ILLEGAL_TRANSITION", "State transition not permitted", nil)
	case errors.Is(err, commands.ErrDuplicate):
		httperr.AbortWithError(c, http.StatusConflict, err, "DUPLICATE", "Duplicate record", nil)
	case errors.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "VALIDATION", "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "STORAGE_ERROR", "Internal server error", nil)
	}
}

func abortQueryError(c *gin.Context, err error) {
	if infra.IsKind(err, infra.KindNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "NOT_FOUND", "Not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "STORAGE_ERROR", "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", msg, nil)
}

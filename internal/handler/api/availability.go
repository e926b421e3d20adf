package api

import (
	"errors"
	"net/http"
	"time"

	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// GetAvailable lists vehicles free for the requested window. The window is
// passed as ?start=2006-01-02&end=2006-01-02; start == end asks about a
// single day, which is valid.
func (h *AvailabilityHandler) GetAvailable(c *gin.Context) {
	start, err := time.Parse(time.DateOnly, c.Query("start"))
	if err != nil {
		abortBadRequest(c, err, "Invalid start date")
		return
	}
	end, err := time.Parse(time.DateOnly, c.Query("end"))
	if err != nil {
		abortBadRequest(c, err, "Invalid end date")
		return
	}
	if end.Before(start) {
		abortBadRequest(c, errors.New("end before start"), "End date must not be before start date")
		return
	}

	views, err := h.availability.Available(c.Request.Context(), start, end)
	if err != nil {
		abortQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableVehicleViews(views))
}

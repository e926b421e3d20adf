package api

import (
	"net/http"
	"time"

	reqdto "fleet-booking/internal/handler/dto/request"
	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{commands: cmds, queries: qs}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	reserved, expected, err := req.Dates()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), commands.CreateReservationInput{
		ClientID:           req.ClientID,
		VehicleID:          req.VehicleID,
		ReservedDate:       reserved,
		ExpectedRentalDate: expected,
		DepositCents:       req.DepositCents,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// Confirm converts the reservation into an open rental and returns the
// new rental's ID.
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation ID format")
		return
	}

	result, err := h.commands.Confirm(c.Request.Context(), id)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ConfirmReservationResponse{RentalID: result.RentalID})
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation ID format")
		return
	}
	if err := h.commands.Cancel(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation ID format")
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) List(c *gin.Context) {
	filter, err := reservationFilterFromQuery(c)
	if err != nil {
		abortBadRequest(c, err, "Invalid filter")
		return
	}
	views, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func reservationFilterFromQuery(c *gin.Context) (queries.ReservationFilter, error) {
	var f queries.ReservationFilter
	if s := c.Query("status"); s != "" {
		f.Status = &s
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return f, err
		}
		f.DateTo = &t
	}
	return f, nil
}

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

type RentalHandler struct {
	commands commands.RentalCommands
	queries  queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, qs queries.RentalQueries) *RentalHandler {
	return &RentalHandler{commands: cmds, queries: qs}
}

func (h *RentalHandler) Create(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	start, expected, err := req.Dates()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), commands.CreateRentalInput{
		ClientID:           req.ClientID,
		VehicleID:          req.VehicleID,
		StartDate:          start,
		ExpectedReturnDate: expected,
		OdometerOutKm:      req.OdometerOutKm,
		Notes:              req.Notes,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *RentalHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid rental ID format")
		return
	}
	var req reqdto.CloseRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	actualReturn, err := req.Date()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	err = h.commands.Close(c.Request.Context(), id, commands.CloseRentalInput{
		ActualReturnDate: actualReturn,
		OdometerInKm:     req.OdometerInKm,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RentalHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid rental ID format")
		return
	}
	if err := h.commands.Cancel(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RentalHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid rental ID format")
		return
	}
	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RentalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid rental ID format")
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

func (h *RentalHandler) List(c *gin.Context) {
	filter, err := rentalFilterFromQuery(c)
	if err != nil {
		abortBadRequest(c, err, "Invalid filter")
		return
	}
	views, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

func rentalFilterFromQuery(c *gin.Context) (queries.RentalFilter, error) {
	var f queries.RentalFilter
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

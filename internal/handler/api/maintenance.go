package api

import (
	"net/http"

	reqdto "fleet-booking/internal/handler/dto/request"
	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	commands commands.MaintenanceCommands
	queries  queries.MaintenanceQueries
}

func NewMaintenanceHandler(cmds commands.MaintenanceCommands, qs queries.MaintenanceQueries) *MaintenanceHandler {
	return &MaintenanceHandler{commands: cmds, queries: qs}
}

func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	scheduled, err := req.Date()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	id, err := h.commands.Schedule(c.Request.Context(), commands.ScheduleMaintenanceInput{
		VehicleID:     req.VehicleID,
		ScheduledDate: scheduled,
		OdometerKm:    req.OdometerKm,
		CostCents:     req.CostCents,
		Notes:         req.Notes,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// Reschedule moves the window to another day while it is still SCHEDULED.
func (h *MaintenanceHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid maintenance ID format")
		return
	}
	var req reqdto.RescheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	scheduled, err := req.Date()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	if err := h.commands.Reschedule(c.Request.Context(), id, commands.RescheduleMaintenanceInput{
		ScheduledDate: scheduled,
	}); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MaintenanceHandler) Start(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid maintenance ID format")
		return
	}
	if err := h.commands.Start(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MaintenanceHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid maintenance ID format")
		return
	}
	var req reqdto.CompleteMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	performed, err := req.Date()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	err = h.commands.Complete(c.Request.Context(), id, commands.CompleteMaintenanceInput{
		PerformedDate: performed,
		OdometerKm:    req.OdometerKm,
		CostCents:     req.CostCents,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MaintenanceHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid maintenance ID format")
		return
	}
	if err := h.commands.Cancel(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MaintenanceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid maintenance ID format")
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceView(view))
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	var f queries.MaintenanceFilter
	if s := c.Query("status"); s != "" {
		f.Status = &s
	}
	if s := c.Query("vehicleId"); s != "" {
		vid, err := uuid.Parse(s)
		if err != nil {
			abortBadRequest(c, err, "Invalid vehicle ID format")
			return
		}
		f.VehicleID = &vid
	}

	views, err := h.queries.List(c.Request.Context(), f)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceViews(views))
}

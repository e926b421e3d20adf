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

type VehicleHandler struct {
	commands commands.VehicleCommands
	queries  queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, qs queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{commands: cmds, queries: qs}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req reqdto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	insurance, inspection, err := req.Expiries()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), commands.CreateVehicleInput{
		Plate:             req.Plate,
		Make:              req.Make,
		Model:             req.Model,
		Year:              req.Year,
		OdometerKm:        req.OdometerKm,
		ServiceIntervalKm: req.ServiceIntervalKm,
		InsuranceExpiry:   insurance,
		InspectionExpiry:  inspection,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid vehicle ID format")
		return
	}
	var req reqdto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	insurance, inspection, err := req.Expiries()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	err = h.commands.Update(c.Request.Context(), id, commands.UpdateVehicleInput{
		InsuranceExpiry:  insurance,
		InspectionExpiry: inspection,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) SetEnabled(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid vehicle ID format")
		return
	}
	var req reqdto.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.commands.SetEnabled(c.Request.Context(), id, *req.Enabled); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid vehicle ID format")
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

func (h *VehicleHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

func (h *VehicleHandler) ListMaintenanceDue(c *gin.Context) {
	views, err := h.queries.ListMaintenanceDue(c.Request.Context())
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

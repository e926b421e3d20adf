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

type ClientHandler struct {
	commands commands.ClientCommands
	queries  queries.ClientQueries
}

func NewClientHandler(cmds commands.ClientCommands, qs queries.ClientQueries) *ClientHandler {
	return &ClientHandler{commands: cmds, queries: qs}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	expiry, err := req.Expiry()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), commands.CreateClientInput{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: expiry,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid client ID format")
		return
	}
	var req reqdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	expiry, err := req.Expiry()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	err = h.commands.Update(c.Request.Context(), id, commands.UpdateClientInput{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: expiry,
	})
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) SetEnabled(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid client ID format")
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

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid client ID format")
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientViews(views))
}

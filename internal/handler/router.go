package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-booking/internal/handler/api"
	"fleet-booking/internal/handler/middleware"
	"fleet-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	availabilityHandler *api.AvailabilityHandler,
	rentalHandler *api.RentalHandler,
	reservationHandler *api.ReservationHandler,
	maintenanceHandler *api.MaintenanceHandler,
	vehicleHandler *api.VehicleHandler,
	clientHandler *api.ClientHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, availabilityHandler, rentalHandler, reservationHandler, maintenanceHandler, vehicleHandler, clientHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	rentalHandler *api.RentalHandler,
	reservationHandler *api.ReservationHandler,
	maintenanceHandler *api.MaintenanceHandler,
	vehicleHandler *api.VehicleHandler,
	clientHandler *api.ClientHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "", Handler: availabilityHandler.GetAvailable},
		})

		addRoutes(apiGroup.Group("/rentals"), []route{
			{Method: http.MethodPost, Path: "", Handler: rentalHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: rentalHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.Get},
			{Method: http.MethodPost, Path: "/:id/close", Handler: rentalHandler.Close},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: rentalHandler.Cancel},
			{Method: http.MethodDelete, Path: "/:id", Handler: rentalHandler.Delete},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.Confirm},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
		})

		addRoutes(apiGroup.Group("/maintenance"), []route{
			{Method: http.MethodPost, Path: "", Handler: maintenanceHandler.Schedule},
			{Method: http.MethodGet, Path: "", Handler: maintenanceHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: maintenanceHandler.Get},
			{Method: http.MethodPost, Path: "/:id/reschedule", Handler: maintenanceHandler.Reschedule},
			{Method: http.MethodPost, Path: "/:id/start", Handler: maintenanceHandler.Start},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: maintenanceHandler.Complete},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: maintenanceHandler.Cancel},
		})

		addRoutes(apiGroup.Group("/vehicles"), []route{
			{Method: http.MethodPost, Path: "", Handler: vehicleHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: vehicleHandler.List},
			{Method: http.MethodGet, Path: "/maintenance-due", Handler: vehicleHandler.ListMaintenanceDue},
			{Method: http.MethodGet, Path: "/:id", Handler: vehicleHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: vehicleHandler.Update},
			{Method: http.MethodPatch, Path: "/:id/enabled", Handler: vehicleHandler.SetEnabled},
		})

		addRoutes(apiGroup.Group("/clients"), []route{
			{Method: http.MethodPost, Path: "", Handler: clientHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: clientHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: clientHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: clientHandler.Update},
			{Method: http.MethodPatch, Path: "/:id/enabled", Handler: clientHandler.SetEnabled},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

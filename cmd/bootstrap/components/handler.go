package components

import (
	"fleet-booking/internal/handler"
	"fleet-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewRentalHandler,
		api.NewReservationHandler,
		api.NewMaintenanceHandler,
		api.NewVehicleHandler,
		api.NewClientHandler,
	),
	fx.Invoke(handler.NewRouter),
)

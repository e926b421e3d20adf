package components

import (
	"fleet-booking/internal/pkg/clock"
	"fleet-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewRentalCommands,
		commands.NewReservationCommands,
		commands.NewMaintenanceCommands,
		commands.NewVehicleCommands,
		commands.NewClientCommands,
	),
)

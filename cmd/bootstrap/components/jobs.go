package components

import (
	"context"

	"fleet-booking/internal/jobs"
	"fleet-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		func(cfg config.Config) config.JobsConfig { return cfg.Jobs },
		jobs.NewMaintenanceScanner,
	),
	fx.Invoke(startMaintenanceScanner),
)

func startMaintenanceScanner(lc fx.Lifecycle, scanner *jobs.MaintenanceScanner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scanner.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			scanner.Stop()
			return nil
		},
	})
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/usecase/queries"
)

// MaintenanceScanner periodically reports vehicles that have run past
// their service interval, so the fleet desk can schedule a window before
// the next booking goes out.
type MaintenanceScanner struct {
	vehicles queries.VehicleQueries
	interval time.Duration
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

func NewMaintenanceScanner(vehicles queries.VehicleQueries, cfg config.JobsConfig, logger *slog.Logger) *MaintenanceScanner {
	return &MaintenanceScanner{
		vehicles: vehicles,
		interval: cfg.MaintenanceScanInterval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start is a no-op when the scan interval is zero.
func (s *MaintenanceScanner) Start(ctx context.Context) {
	if s.interval <= 0 {
		close(s.done)
		return
	}
	go s.run(ctx)
}

func (s *MaintenanceScanner) Stop() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.stop)
	<-s.done
}

func (s *MaintenanceScanner) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.scan(ctx)
	for {
		select {
		case <-ticker.C:
			s.scan(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *MaintenanceScanner) scan(ctx context.Context) {
	views, err := s.vehicles.ListMaintenanceDue(ctx)
	if err != nil {
		s.logger.Error("maintenance scan failed", "error", err.Error())
		return
	}
	for _, v := range views {
		s.logger.Warn("vehicle is due for maintenance",
			"vehicle_id", v.ID,
			"plate", v.Plate,
			"odometer_km", v.OdometerKm,
			"last_service_odometer_km", v.LastServiceOdometerKm,
			"service_interval_km", v.ServiceIntervalKm)
	}
	if len(views) > 0 {
		s.logger.Info("maintenance scan completed", "due_count", len(views))
	}
}

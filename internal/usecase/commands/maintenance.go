package commands

import (
	"context"
	"log/slog"
	"time"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/domain/maintenance"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/clock"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleMaintenanceInput struct {
	VehicleID     uuid.UUID
	ScheduledDate time.Time
	OdometerKm    int64
	CostCents     int64
	Notes         string
}

type CompleteMaintenanceInput struct {
	PerformedDate time.Time
	OdometerKm    int64
	CostCents     int64
}

type RescheduleMaintenanceInput struct {
	ScheduledDate time.Time
}

type MaintenanceCommands interface {
	Schedule(ctx context.Context, in ScheduleMaintenanceInput) (uuid.UUID, error)
	Reschedule(ctx context.Context, id uuid.UUID, in RescheduleMaintenanceInput) error
	Start(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, in CompleteMaintenanceInput) error
	Cancel(ctx context.Context, id uuid.UUID) error
}

type maintenanceCommands struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) MaintenanceCommands {
	return &maintenanceCommands{uow: uow, clock: clk, logger: logger}
}

// Schedule books a single-day MAINTENANCE window on the vehicle's
// timeline. The availability resolver honors it the same as any rental
// or reservation hold.
func (c *maintenanceCommands) Schedule(ctx context.Context, in ScheduleMaintenanceInput) (uuid.UUID, error) {
	var eventID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Vehicles().FindByID(ctx, in.VehicleID); err != nil {
			return markRepoErr(err, ErrNotFound)
		}

		scheduled := clock.Midnight(in.ScheduledDate)
		ev, err := maintenance.Schedule(in.VehicleID, &scheduled, in.OdometerKm, in.CostCents, in.Notes, c.clock.Today())
		if err != nil {
			return markMaintenanceErr(err)
		}

		end := scheduled
		iv, err := booking.NewInterval(in.VehicleID, booking.KindMaintenance, ev.ID(), scheduled, &end)
		if err != nil {
			return errs.Mark(err, ErrInvalidDates)
		}
		if err := tx.Intervals().Reserve(ctx, iv); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrVehicleUnavailable)
			}
			return errs.Mark(err, ErrStorage)
		}

		if err := tx.Maintenance().Create(ctx, ev); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		eventID = ev.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.logger.Info("maintenance scheduled", "maintenance_id", eventID, "vehicle_id", in.VehicleID)
	return eventID, nil
}

// Reschedule moves a still-SCHEDULED window to another day, swapping its
// hold for one on the new date. The release and re-reserve share the
// transaction, so a conflict on the new date leaves the old hold intact.
func (c *maintenanceCommands) Reschedule(ctx context.Context, id uuid.UUID, in RescheduleMaintenanceInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Maintenance().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}

		scheduled := clock.Midnight(in.ScheduledDate)
		if err := ev.Reschedule(scheduled, c.clock.Today()); err != nil {
			return markMaintenanceErr(err)
		}

		if err := tx.Intervals().ReleaseBySource(ctx, booking.KindMaintenance, ev.ID()); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		end := scheduled
		iv, err := booking.NewInterval(ev.VehicleID(), booking.KindMaintenance, ev.ID(), scheduled, &end)
		if err != nil {
			return errs.Mark(err, ErrInvalidDates)
		}
		if err := tx.Intervals().Reserve(ctx, iv); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrVehicleUnavailable)
			}
			return errs.Mark(err, ErrStorage)
		}

		if err := tx.Maintenance().Update(ctx, ev); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

// Start only locks field editability; the window's interval is untouched.
func (c *maintenanceCommands) Start(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Maintenance().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := ev.Start(); err != nil {
			return markMaintenanceErr(err)
		}
		if err := tx.Maintenance().Update(ctx, ev); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

// Complete closes the window, releases its interval and records the
// service on the vehicle (last-service odometer and date).
func (c *maintenanceCommands) Complete(ctx context.Context, id uuid.UUID, in CompleteMaintenanceInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Maintenance().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}

		performed := clock.Midnight(in.PerformedDate)
		if err := ev.Complete(performed, in.OdometerKm, in.CostCents); err != nil {
			return markMaintenanceErr(err)
		}

		if err := tx.Intervals().ReleaseBySource(ctx, booking.KindMaintenance, ev.ID()); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		v, err := tx.Vehicles().FindByID(ctx, ev.VehicleID())
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := v.RecordService(in.OdometerKm, performed); err != nil {
			return errs.Mark(err, ErrInvalidOdometer)
		}
		if err := tx.Vehicles().Update(ctx, v); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		if err := tx.Maintenance().Update(ctx, ev); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

// Cancel releases the window without touching the vehicle.
func (c *maintenanceCommands) Cancel(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Maintenance().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := ev.Cancel(); err != nil {
			return markMaintenanceErr(err)
		}
		if err := tx.Intervals().ReleaseBySource(ctx, booking.KindMaintenance, ev.ID()); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if err := tx.Maintenance().Update(ctx, ev); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

func markMaintenanceErr(err error) error {
	switch {
	case errs.Is(err, maintenance.ErrIllegalTransition):
		return errs.Mark(err, ErrIllegalTransition)
	case errs.Is(err, maintenance.ErrScheduledDateRequired),
		errs.Is(err, maintenance.ErrScheduledDateInPast),
		errs.Is(err, maintenance.ErrScheduledDateLocked),
		errs.Is(err, maintenance.ErrPerformedDateRequired),
		errs.Is(err, maintenance.ErrPerformedDateForbidden),
		errs.Is(err, maintenance.ErrPerformedTooEarly):
		return errs.Mark(err, ErrInvalidDates)
	case errs.Is(err, maintenance.ErrNegativeOdometer):
		return errs.Mark(err, ErrInvalidOdometer)
	default:
		return errs.Mark(err, ErrValidation)
	}
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/domain/rental"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/clock"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRentalInput struct {
	ClientID           uuid.UUID
	VehicleID          uuid.UUID
	StartDate          time.Time
	ExpectedReturnDate time.Time
	OdometerOutKm      int64
	Notes              string
}

type CloseRentalInput struct {
	ActualReturnDate time.Time
	OdometerInKm     int64
}

type RentalCommands interface {
	Create(ctx context.Context, in CreateRentalInput) (uuid.UUID, error)
	Close(ctx context.Context, id uuid.UUID, in CloseRentalInput) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rentalCommands struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewRentalCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) RentalCommands {
	return &rentalCommands{uow: uow, clock: clk, logger: logger}
}

// Create books a vehicle out: eligibility gate, then availability, then an
// open-ended RENTAL interval plus the rental record in one transaction.
// The interval store's reserve is the authoritative overlap check, so two
// concurrent requests for the same vehicle can never both succeed.
func (c *rentalCommands) Create(ctx context.Context, in CreateRentalInput) (uuid.UUID, error) {
	var rentalID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cl, err := tx.Clients().FindByID(ctx, in.ClientID)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := cl.CheckEligible(); err != nil {
			return errs.Mark(err, ErrIneligibleClient)
		}

		v, err := tx.Vehicles().FindByID(ctx, in.VehicleID)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if !v.Enabled() {
			return ErrVehicleUnavailable
		}

		start := clock.Midnight(in.StartDate)
		expected := clock.Midnight(in.ExpectedReturnDate)

		r, err := rental.NewRental(in.ClientID, in.VehicleID, nil, start, expected, in.OdometerOutKm, in.Notes)
		if err != nil {
			return markRentalErr(err)
		}

		// Open-ended hold: the actual return date is unknown until closure.
		iv, err := booking.NewInterval(in.VehicleID, booking.KindRental, r.ID(), start, nil)
		if err != nil {
			return errs.Mark(err, ErrInvalidDates)
		}
		if err := tx.Intervals().Reserve(ctx, iv); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrVehicleUnavailable)
			}
			return errs.Mark(err, ErrStorage)
		}

		if err := tx.Rentals().Create(ctx, r); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		rentalID = r.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.logger.Info("rental created", "rental_id", rentalID, "vehicle_id", in.VehicleID, "client_id", in.ClientID)
	return rentalID, nil
}

// Close records the return, shrinks the rental's interval to the days
// actually consumed and moves the vehicle odometer forward. If the rental
// descends from a reservation, that reservation completes with it.
func (c *rentalCommands) Close(ctx context.Context, id uuid.UUID, in CloseRentalInput) error {
	var maintenanceDue bool
	var vehicleID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}

		actualReturn := clock.Midnight(in.ActualReturnDate)
		if err := r.Close(actualReturn, in.OdometerInKm); err != nil {
			return markRentalErr(err)
		}

		if err := tx.Intervals().Shrink(ctx, booking.KindRental, r.ID(), actualReturn); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		v, err := tx.Vehicles().FindByID(ctx, r.VehicleID())
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := v.AdvanceOdometer(in.OdometerInKm); err != nil {
			return errs.Mark(err, ErrInvalidOdometer)
		}
		if err := tx.Vehicles().Update(ctx, v); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		maintenanceDue = v.MaintenanceDue()
		vehicleID = v.ID()

		if err := tx.Rentals().Update(ctx, r); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		if resID := r.ReservationID(); resID != nil {
			res, err := tx.Reservations().FindByID(ctx, *resID)
			if err != nil {
				return markRepoErr(err, ErrNotFound)
			}
			if err := res.Complete(); err != nil {
				return errs.Mark(err, ErrIllegalTransition)
			}
			if err := tx.Reservations().Update(ctx, res); err != nil {
				return errs.Mark(err, ErrStorage)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if maintenanceDue {
		c.logger.Warn("vehicle is due for maintenance", "vehicle_id", vehicleID)
	}
	return nil
}

// Cancel administratively voids an OPEN rental, releasing its interval
// entirely as if the rental never happened. A rental spawned by a
// confirmed reservation takes that reservation down with it; a CONFIRMED
// reservation whose rental is gone has no other way out of its state.
func (c *rentalCommands) Cancel(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := r.Cancel(); err != nil {
			return markRentalErr(err)
		}
		if err := tx.Intervals().ReleaseBySource(ctx, booking.KindRental, r.ID()); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if err := tx.Rentals().Update(ctx, r); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		if resID := r.ReservationID(); resID != nil {
			res, err := tx.Reservations().FindByID(ctx, *resID)
			if err != nil {
				return markRepoErr(err, ErrNotFound)
			}
			if err := res.Cancel(); err != nil {
				return errs.Mark(err, ErrIllegalTransition)
			}
			if err := tx.Reservations().Update(ctx, res); err != nil {
				return errs.Mark(err, ErrStorage)
			}
		}
		return nil
	})
}

// Delete is a destructive administrative removal, permitted in any state.
func (c *rentalCommands) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rentals().FindByID(ctx, id); err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := tx.Intervals().ReleaseBySource(ctx, booking.KindRental, id); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		if err := tx.Rentals().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

func markRentalErr(err error) error {
	switch {
	case errs.Is(err, rental.ErrInvalidDates), errs.Is(err, rental.ErrReturnTooEarly):
		return errs.Mark(err, ErrInvalidDates)
	case errs.Is(err, rental.ErrInvalidOdometer):
		return errs.Mark(err, ErrInvalidOdometer)
	case errs.Is(err, rental.ErrIllegalTransition):
		return errs.Mark(err, ErrIllegalTransition)
	default:
		return errs.Mark(err, ErrValidation)
	}
}

func markRepoErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrStorage)
}

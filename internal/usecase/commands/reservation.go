package commands

import (
	"context"
	"log/slog"
	"time"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/domain/rental"
	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/clock"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	ClientID           uuid.UUID
	VehicleID          uuid.UUID
	ReservedDate       time.Time
	ExpectedRentalDate time.Time
	DepositCents       int64
}

type ConfirmReservationResult struct {
	RentalID uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (uuid.UUID, error)
	Confirm(ctx context.Context, id uuid.UUID) (*ConfirmReservationResult, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type reservationCommands struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ReservationCommands {
	return &reservationCommands{uow: uow, clock: clk, logger: logger}
}

// Create places an advance hold: same eligibility-then-availability
// sequence as a rental, but the RESERVATION interval is a closed range
// since the pickup date is known.
func (c *reservationCommands) Create(ctx context.Context, in CreateReservationInput) (uuid.UUID, error) {
	var reservationID uuid.UUID

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

		reserved := clock.Midnight(in.ReservedDate)
		expected := clock.Midnight(in.ExpectedRentalDate)

		res, err := reservation.NewReservation(in.ClientID, in.VehicleID, reserved, expected, in.DepositCents)
		if err != nil {
			return markReservationErr(err)
		}

		end := expected
		iv, err := booking.NewInterval(in.VehicleID, booking.KindReservation, res.ID(), reserved, &end)
		if err != nil {
			return errs.Mark(err, ErrInvalidDates)
		}
		if err := tx.Intervals().Reserve(ctx, iv); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrVehicleUnavailable)
			}
			return errs.Mark(err, ErrStorage)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		reservationID = res.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.logger.Info("reservation created", "reservation_id", reservationID, "vehicle_id", in.VehicleID, "client_id", in.ClientID)
	return reservationID, nil
}

// Confirm promotes a PENDING reservation into an open rental. The new
// rental gets its own open-ended RENTAL interval and the reservation's
// hold is released in the same transaction, so the vehicle is never
// double-held and never momentarily free. A second confirm fails on the
// reservation's state machine before any rental is created.
func (c *reservationCommands) Confirm(ctx context.Context, id uuid.UUID) (*ConfirmReservationResult, error) {
	var rentalID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if err := res.Confirm(); err != nil {
			return markReservationErr(err)
		}

		v, err := tx.Vehicles().FindByID(ctx, res.VehicleID())
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}

		resID := res.ID()
		start := clock.Midnight(res.ExpectedRentalDate())
		r, err := rental.NewRental(res.ClientID(), res.VehicleID(), &resID, start, start, v.OdometerKm(), "")
		if err != nil {
			return markRentalErr(err)
		}

		// Release the hold before reserving the rental's interval: both
		// cover the pickup day, and the swap is invisible outside the tx.
		if err := tx.Intervals().ReleaseBySource(ctx, booking.KindReservation, res.ID()); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		iv, err := booking.NewInterval(res.VehicleID(), booking.KindRental, r.ID(), start, nil)
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
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrStorage)
		}

		rentalID = r.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("reservation confirmed", "reservation_id", id, "rental_id", rentalID)
	return &ConfirmReservationResult{RentalID: rentalID}, nil
}

// Cancel releases the hold. Cancelling a CONFIRMED reservation also
// cancels the open rental that descended from it.
func (c *reservationCommands) Cancel(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}

		wasConfirmed := res.IsConfirmed()
		if err := res.Cancel(); err != nil {
			return markReservationErr(err)
		}

		if wasConfirmed {
			r, err := tx.Rentals().FindOpenByReservation(ctx, res.ID())
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
		} else {
			if err := tx.Intervals().ReleaseBySource(ctx, booking.KindReservation, res.ID()); err != nil {
				return errs.Mark(err, ErrStorage)
			}
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

func markReservationErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrInvalidDates):
		return errs.Mark(err, ErrInvalidDates)
	case errs.Is(err, reservation.ErrIllegalTransition):
		return errs.Mark(err, ErrIllegalTransition)
	default:
		return errs.Mark(err, ErrValidation)
	}
}
